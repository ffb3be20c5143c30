package billing

import (
	"github.com/smrft/er-billing/internal/domain/catalog"
)

// LineItemRegistry is a single bill-editing session. It owns the line items
// and the discount expression and keeps the totals consistent with them
// after every mutation, so callers never observe a stale money block.
//
// The registry is built over a catalog snapshot taken when the session
// starts; procedures added mid-edit are priced at that snapshot's rates.
// It is not safe for concurrent use; each session belongs to one request
// flow at a time.
type LineItemRegistry struct {
	catalog  *catalog.Snapshot
	items    []LineItem
	index    map[string]int
	discount string
	totals   BillTotals
}

func NewLineItemRegistry(cat *catalog.Snapshot) *LineItemRegistry {
	return &LineItemRegistry{
		catalog: cat,
		index:   make(map[string]int),
	}
}

// HydrateRegistry rebuilds an editing session from a previously stored
// bill, e.g. when a clerk reopens a bill to correct it. The stored items
// keep their rates and quantities; amounts and totals are re-derived.
func HydrateRegistry(cat *catalog.Snapshot, items []LineItem, discount string) *LineItemRegistry {
	r := NewLineItemRegistry(cat)
	for i := range items {
		item := items[i].clone()
		item.recompute()
		r.index[item.Name] = len(r.items)
		r.items = append(r.items, item)
	}
	r.discount = discount
	r.recompute()
	return r
}

// Add appends a procedure to the bill at its catalog rate with quantity 1.
// Adding a procedure already on the bill is rejected; the clerk adjusts its
// quantity instead.
func (r *LineItemRegistry) Add(name string) error {
	if _, exists := r.index[name]; exists {
		return ErrDuplicateLineItem
	}
	rate, ok := r.catalog.Rate(name)
	if !ok {
		return ErrUnknownProcedure
	}
	q := 1
	r.index[name] = len(r.items)
	r.items = append(r.items, LineItem{Name: name, Quantity: &q, UnitRate: rate, Amount: rate})
	r.recompute()
	return nil
}

// AddOffCatalog appends a procedure that the current catalog no longer
// lists, at quantity 1 and rate 0. Bills stored before a catalog revision
// can carry such names; resubmitting them must not fail, and the clerk can
// still set the rate afterwards. Duplicates are rejected like Add.
func (r *LineItemRegistry) AddOffCatalog(name string) error {
	if _, exists := r.index[name]; exists {
		return ErrDuplicateLineItem
	}
	q := 1
	r.index[name] = len(r.items)
	r.items = append(r.items, LineItem{Name: name, Quantity: &q})
	r.recompute()
	return nil
}

// Remove drops a procedure from the bill. Removing a name that is not on
// the bill is a no-op.
func (r *LineItemRegistry) Remove(name string) {
	i, exists := r.index[name]
	if !exists {
		return
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, name)
	for n, j := range r.index {
		if j > i {
			r.index[n] = j - 1
		}
	}
	r.recompute()
}

// SetQuantity updates the quantity of a line from raw clerk input. Invalid
// input unsets the quantity and zeroes the amount; unknown names are
// ignored.
func (r *LineItemRegistry) SetQuantity(name, raw string) {
	i, exists := r.index[name]
	if !exists {
		return
	}
	r.items[i].setQuantity(raw)
	r.recompute()
}

// SetRate overrides the rate of a line from raw clerk input, recomputing
// the amount with the line's current quantity.
func (r *LineItemRegistry) SetRate(name, raw string) {
	i, exists := r.index[name]
	if !exists {
		return
	}
	r.items[i].setRate(raw)
	r.recompute()
}

// SetDiscount replaces the discount expression for the bill.
func (r *LineItemRegistry) SetDiscount(raw string) {
	r.discount = raw
	r.recompute()
}

// Items returns a copy of the current line items in insertion order.
func (r *LineItemRegistry) Items() []LineItem {
	out := make([]LineItem, len(r.items))
	for i := range r.items {
		out[i] = r.items[i].clone()
	}
	return out
}

func (r *LineItemRegistry) Discount() string {
	return r.discount
}

func (r *LineItemRegistry) Totals() BillTotals {
	return r.totals
}

func (r *LineItemRegistry) recompute() {
	r.totals = ComputeTotals(r.items, r.discount)
}
