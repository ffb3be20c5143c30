package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// AssembleSnapshot finalizes an editing session into a self-contained bill.
// The snapshot carries its own copy of the line items and the derived
// totals, so later catalog or registration changes cannot alter it.
func AssembleSnapshot(patient Patient, doctorName, billNumber, erNumber, billDate string, items []LineItem, discount string) (*BillSnapshot, error) {
	if patient.Name == "" {
		return nil, fmt.Errorf("%w: patient name is required", ErrIncompleteBill)
	}
	if erNumber == "" {
		return nil, fmt.Errorf("%w: er number is required", ErrIncompleteBill)
	}
	if billNumber == "" {
		return nil, ErrBillNumberUnassigned
	}
	if billDate == "" {
		billDate = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, billDate); err != nil {
		return nil, fmt.Errorf("%w: bill date must be YYYY-MM-DD", ErrIncompleteBill)
	}

	copied := make([]LineItem, len(items))
	for i := range items {
		copied[i] = items[i].clone()
		copied[i].recompute()
	}

	return &BillSnapshot{
		ID:         uuid.New(),
		BillNumber: billNumber,
		ERNumber:   erNumber,
		Patient:    patient,
		DoctorName: doctorName,
		BillDate:   billDate,
		LineItems:  copied,
		Discount:   discount,
		Totals:     ComputeTotals(copied, discount),
	}, nil
}

// SnapshotFromRecord rebuilds a bill snapshot from its stored form. Line
// items are decoded from whatever encoding the row carries and every
// derived figure is recomputed; stored totals are ignored.
func SnapshotFromRecord(rec *StoredBill) (*BillSnapshot, error) {
	items, err := DecodeLineItems(rec.RawLineItems)
	if err != nil {
		return nil, fmt.Errorf("decode line items for bill %s: %w", rec.BillNumber, err)
	}
	return &BillSnapshot{
		ID:         rec.ID,
		BillNumber: rec.BillNumber,
		ERNumber:   rec.ERNumber,
		Patient:    rec.Patient,
		DoctorName: rec.DoctorName,
		BillDate:   rec.BillDate,
		LineItems:  items,
		Discount:   rec.Discount,
		Totals:     ComputeTotals(items, rec.Discount),
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}, nil
}
