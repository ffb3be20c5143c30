package billing

import (
	"context"

	"github.com/google/uuid"
)

// BillRepository stores finalized bills.
type BillRepository interface {
	Create(ctx context.Context, bill *StoredBill) error
	GetByID(ctx context.Context, id uuid.UUID) (*StoredBill, error)
	GetByBillNumber(ctx context.Context, billNumber string) (*StoredBill, error)
	Update(ctx context.Context, bill *StoredBill) error
	ListByDate(ctx context.Context, date string, limit, offset int) ([]*StoredBill, int, error)
	ListByDateRange(ctx context.Context, from, to string, limit, offset int) ([]*StoredBill, int, error)
}

// BillNumberAllocator hands out unique, monotonically increasing bill
// numbers. Numbers consumed by abandoned bills are never reused.
type BillNumberAllocator interface {
	NextBillNumber(ctx context.Context) (string, error)
}
