package billing

// ComputeTotals derives the money block of a bill from its line items and
// the raw discount expression. The subtotal is the sum of line amounts; the
// net amount is subtotal minus discount. A discount larger than the subtotal
// deliberately produces a negative net so that data-entry mistakes stay
// visible rather than being clamped away.
func ComputeTotals(items []LineItem, rawDiscount string) BillTotals {
	var subtotal float64
	for i := range items {
		subtotal += items[i].Amount
	}
	discount := ParseDiscount(rawDiscount).Apply(subtotal)
	return BillTotals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		NetAmount:      subtotal - discount,
	}
}
