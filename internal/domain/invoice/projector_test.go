package invoice

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/smrft/er-billing/internal/domain/billing"
)

func sampleSnapshot() *billing.BillSnapshot {
	one, two := 1, 2
	items := []billing.LineItem{
		{Name: "CT Scan", Quantity: &one, UnitRate: 1200, Amount: 1200},
		{Name: "X-Ray", Quantity: &two, UnitRate: 350, Amount: 700},
		{Name: "Dressing", UnitRate: 100, Amount: 0},
	}
	return &billing.BillSnapshot{
		ID:         uuid.New(),
		BillNumber: "ERB000042",
		ERNumber:   "ER000017",
		Patient:    billing.Patient{Name: "Raman"},
		DoctorName: "Dr. Kumar",
		BillDate:   "2026-08-31",
		LineItems:  items,
		Discount:   "10%",
		Totals:     billing.ComputeTotals(items, "10%"),
	}
}

func TestProject(t *testing.T) {
	doc := Project(sampleSnapshot())

	if doc.Header.HospitalName != "SHANMUGA HOSPITAL LIMITED" {
		t.Errorf("unexpected hospital name: %q", doc.Header.HospitalName)
	}
	if doc.Header.Title != "Cash Bill - ER BILL (SH)" {
		t.Errorf("unexpected title: %q", doc.Header.Title)
	}
	if len(doc.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(doc.Rows))
	}

	first := doc.Rows[0]
	if first.Number != 1 || first.Description != "CT Scan" || first.Quantity != "1" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Amount != "1200.00" {
		t.Errorf("expected amount 1200.00, got %q", first.Amount)
	}

	// A line with no quantity prints an empty cell, not a zero.
	if doc.Rows[2].Quantity != "" {
		t.Errorf("expected empty quantity cell, got %q", doc.Rows[2].Quantity)
	}
	if doc.Rows[2].Amount != "0.00" {
		t.Errorf("expected amount 0.00, got %q", doc.Rows[2].Amount)
	}

	if doc.Totals.Subtotal != "1900.00" {
		t.Errorf("expected subtotal 1900.00, got %q", doc.Totals.Subtotal)
	}
	if doc.Totals.NetAmount != "1710.00" {
		t.Errorf("expected net 1710.00, got %q", doc.Totals.NetAmount)
	}
	if !doc.Totals.ShowDiscount {
		t.Error("expected discount line to be shown")
	}
}

func TestProject_NoDiscountLine(t *testing.T) {
	snap := sampleSnapshot()
	snap.Discount = ""
	snap.Totals = billing.ComputeTotals(snap.LineItems, "")

	doc := Project(snap)
	if doc.Totals.ShowDiscount {
		t.Error("expected discount line to be hidden")
	}
	if doc.Totals.NetAmount != doc.Totals.Subtotal {
		t.Errorf("expected net %q to equal subtotal %q", doc.Totals.NetAmount, doc.Totals.Subtotal)
	}
}

// Reprinting a bill must yield exactly the same document.
func TestProject_Deterministic(t *testing.T) {
	snap := sampleSnapshot()

	first := Project(snap)
	second := Project(snap)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("projections differ:\n%+v\n%+v", first, second)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(Project(sampleSnapshot()), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("expected PDF output, got %q", buf.Bytes()[:8])
	}
}
