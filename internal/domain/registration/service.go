package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	alloc ERNumberAllocator
}

func NewService(repo Repository, alloc ERNumberAllocator) *Service {
	return &Service{repo: repo, alloc: alloc}
}

// Register creates an ER registration, allocating the patient's ER number.
func (s *Service) Register(ctx context.Context, patient *ERPatient) (*ERPatient, error) {
	if patient.Name == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if patient.RegistrationDate == "" {
		patient.RegistrationDate = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", patient.RegistrationDate); err != nil {
		return nil, fmt.Errorf("registration date must be YYYY-MM-DD")
	}

	erNumber, err := s.alloc.NextERNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate er number: %w", err)
	}
	patient.ID = uuid.New()
	patient.ERNumber = erNumber

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Update edits a registration's demographics. The ER number is immutable;
// whatever the caller sends for it is discarded.
func (s *Service) Update(ctx context.Context, id uuid.UUID, updated *ERPatient) (*ERPatient, error) {
	if updated.Name == "" {
		return nil, fmt.Errorf("patient name is required")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updated.ID = existing.ID
	updated.ERNumber = existing.ERNumber
	if updated.RegistrationDate == "" {
		updated.RegistrationDate = existing.RegistrationDate
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ERPatient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByERNumber(ctx context.Context, erNumber string) (*ERPatient, error) {
	return s.repo.GetByERNumber(ctx, erNumber)
}

// ListByDate returns the patients registered on one day.
func (s *Service) ListByDate(ctx context.Context, date string, limit, offset int) ([]*ERPatient, int, error) {
	return s.repo.ListByDate(ctx, date, limit, offset)
}
