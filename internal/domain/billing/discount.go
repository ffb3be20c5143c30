package billing

import (
	"strconv"
	"strings"
)

type DiscountKind string

const (
	DiscountNone    DiscountKind = "none"
	DiscountFlat    DiscountKind = "flat"
	DiscountPercent DiscountKind = "percent"
)

// Discount is the parsed form of a raw discount expression. The raw string
// stays the source of truth on the bill; this is only ever derived from it.
type Discount struct {
	Kind  DiscountKind
	Value float64
}

// ParseDiscount interprets a discount expression as entered by the clerk.
// A value containing a percent sign is a percentage of the subtotal, any
// other non-empty value is a flat deduction in rupees. Unparseable numbers
// degrade to zero instead of blocking the bill.
func ParseDiscount(raw string) Discount {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Discount{Kind: DiscountNone}
	}
	if strings.Contains(trimmed, "%") {
		numeric := strings.TrimSpace(strings.ReplaceAll(trimmed, "%", ""))
		value, err := strconv.ParseFloat(numeric, 64)
		if err != nil {
			value = 0
		}
		return Discount{Kind: DiscountPercent, Value: value}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		value = 0
	}
	return Discount{Kind: DiscountFlat, Value: value}
}

// Apply returns the discount amount for a given subtotal.
func (d Discount) Apply(subtotal float64) float64 {
	switch d.Kind {
	case DiscountPercent:
		return subtotal * d.Value / 100
	case DiscountFlat:
		return d.Value
	default:
		return 0
	}
}
