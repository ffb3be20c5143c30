package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/smrft/er-billing/internal/domain/catalog"
)

// TxRunner executes fn atomically. Production wiring binds db.InTx to the
// connection pool; a nil runner executes fn directly.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	bills BillRepository
	alloc BillNumberAllocator
	tx    TxRunner
}

func NewService(bills BillRepository, alloc BillNumberAllocator, tx TxRunner) *Service {
	return &Service{bills: bills, alloc: alloc, tx: tx}
}

func (s *Service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx(ctx, fn)
}

// NextBillNumber reserves the next bill number for a new editing session.
// The number is consumed even if the bill is later abandoned.
func (s *Service) NextBillNumber(ctx context.Context) (string, error) {
	number, err := s.alloc.NextBillNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAllocatorUnavailable, err)
	}
	return number, nil
}

// Submit persists a finalized bill. Resubmitting an existing bill number
// overwrites the stored row, which is how a reopened bill lands its
// corrections; the operation is safe to retry after a failure.
func (s *Service) Submit(ctx context.Context, snap *BillSnapshot) (*BillSnapshot, error) {
	if snap == nil {
		return nil, ErrIncompleteBill
	}
	if snap.BillNumber == "" {
		return nil, ErrBillNumberUnassigned
	}

	stored, err := toStored(snap)
	if err != nil {
		return nil, err
	}

	// The existence check and the write share a transaction so a concurrent
	// submission of the same bill number cannot slip between them; the
	// unique constraint on bill_number backs the transaction up.
	err = s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.bills.GetByBillNumber(ctx, stored.BillNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			stored.ID = existing.ID
			return s.bills.Update(ctx, stored)
		}
		return s.bills.Create(ctx, stored)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitRejected, err)
	}
	return SnapshotFromRecord(stored)
}

// Get returns a bill with every derived figure re-derived from the stored
// line items.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*BillSnapshot, error) {
	rec, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return SnapshotFromRecord(rec)
}

// GetByBillNumber is Get keyed by the human-facing bill number.
func (s *Service) GetByBillNumber(ctx context.Context, billNumber string) (*BillSnapshot, error) {
	rec, err := s.bills.GetByBillNumber(ctx, billNumber)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return SnapshotFromRecord(rec)
}

// ListByDate returns the bills for one billing day.
func (s *Service) ListByDate(ctx context.Context, date string, limit, offset int) ([]*BillSnapshot, int, error) {
	recs, total, err := s.bills.ListByDate(ctx, date, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	snaps := make([]*BillSnapshot, 0, len(recs))
	for _, rec := range recs {
		snap, err := SnapshotFromRecord(rec)
		if err != nil {
			return nil, 0, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, total, nil
}

// Reopen rebuilds an editing session for a stored bill, priced over the
// given catalog snapshot. Legacy bills come back with their decoded items
// editable like any other.
func (s *Service) Reopen(ctx context.Context, id uuid.UUID, cat *catalog.Snapshot) (*LineItemRegistry, *BillSnapshot, error) {
	snap, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if snap == nil {
		return nil, nil, nil
	}
	return HydrateRegistry(cat, snap.LineItems, snap.Discount), snap, nil
}

func toStored(snap *BillSnapshot) (*StoredBill, error) {
	raw, err := json.Marshal(snap.LineItems)
	if err != nil {
		return nil, fmt.Errorf("encode line items: %w", err)
	}
	id := snap.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &StoredBill{
		ID:           id,
		BillNumber:   snap.BillNumber,
		ERNumber:     snap.ERNumber,
		Patient:      snap.Patient,
		DoctorName:   snap.DoctorName,
		BillDate:     snap.BillDate,
		RawLineItems: raw,
		Discount:     snap.Discount,
		StoredTotals: ComputeTotals(snap.LineItems, snap.Discount),
	}, nil
}
