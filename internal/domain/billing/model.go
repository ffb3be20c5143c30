package billing

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// LineItem is one billed procedure. Quantity is nil while the clerk has not
// entered one yet; an unset or invalid quantity always yields a zero amount.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity *int    `json:"quantity,omitempty"`
	UnitRate float64 `json:"unit_rate"`
	Amount   float64 `json:"amount"`
}

// recompute re-derives Amount from UnitRate and Quantity. The stored amount
// is never trusted; this is the only place an amount is produced.
func (li *LineItem) recompute() {
	if li.Quantity == nil {
		li.Amount = 0
		return
	}
	li.Amount = li.UnitRate * float64(*li.Quantity)
}

// setQuantity parses a raw quantity string. Non-numeric or negative input
// leaves the quantity unset rather than failing the edit.
func (li *LineItem) setQuantity(raw string) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		li.Quantity = nil
	} else {
		li.Quantity = &n
	}
	li.recompute()
}

// setRate parses a raw rate string, overriding the catalog rate for this
// line. Non-numeric input resets the rate to zero.
func (li *LineItem) setRate(raw string) {
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		rate = 0
	}
	li.UnitRate = rate
	li.recompute()
}

func (li *LineItem) clone() LineItem {
	out := *li
	if li.Quantity != nil {
		q := *li.Quantity
		out.Quantity = &q
	}
	return out
}

// Patient holds the demographics captured on the bill itself. Bills keep
// their own copy so a later registration edit cannot rewrite history.
type Patient struct {
	Name    string `json:"patient_name"`
	Age     string `json:"age,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Mobile  string `json:"mobile,omitempty"`
	DOB     string `json:"dob,omitempty"`
	Address string `json:"address,omitempty"`
}

// BillTotals is the derived money block of a bill. It is always recomputed
// from line items and the raw discount expression, never read back blindly.
type BillTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	NetAmount      float64 `json:"net_amount"`
}

// BillSnapshot is a finalized, self-contained bill as handed to storage and
// to invoice rendering.
type BillSnapshot struct {
	ID         uuid.UUID  `json:"id"`
	BillNumber string     `json:"bill_number"`
	ERNumber   string     `json:"er_number"`
	Patient    Patient    `json:"patient"`
	DoctorName string     `json:"doctor_name"`
	BillDate   string     `json:"bill_date"`
	LineItems  []LineItem `json:"line_items"`
	Discount   string     `json:"discount"`
	Totals     BillTotals `json:"totals"`
	CreatedAt  time.Time  `json:"created_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at,omitempty"`
}

// StoredBill is the persisted shape of a bill. Line items stay raw until
// DecodeLineItems has normalized them; rows written by the previous system
// carry several legacy encodings.
type StoredBill struct {
	ID           uuid.UUID
	BillNumber   string
	ERNumber     string
	Patient      Patient
	DoctorName   string
	BillDate     string
	RawLineItems []byte
	Discount     string
	StoredTotals BillTotals
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
