package registration

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, patient *ERPatient) error
	GetByID(ctx context.Context, id uuid.UUID) (*ERPatient, error)
	GetByERNumber(ctx context.Context, erNumber string) (*ERPatient, error)
	Update(ctx context.Context, patient *ERPatient) error
	ListByDate(ctx context.Context, date string, limit, offset int) ([]*ERPatient, int, error)
}

// ERNumberAllocator hands out unique ER numbers, one per registration.
type ERNumberAllocator interface {
	NextERNumber(ctx context.Context) (string, error)
}
