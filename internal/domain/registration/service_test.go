package registration

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepository struct {
	byID      map[uuid.UUID]*ERPatient
	createErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{byID: make(map[uuid.UUID]*ERPatient)}
}

func (m *mockRepository) Create(ctx context.Context, patient *ERPatient) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[patient.ID] = patient
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*ERPatient, error) {
	return m.byID[id], nil
}

func (m *mockRepository) GetByERNumber(ctx context.Context, erNumber string) (*ERPatient, error) {
	for _, p := range m.byID {
		if p.ERNumber == erNumber {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) Update(ctx context.Context, patient *ERPatient) error {
	m.byID[patient.ID] = patient
	return nil
}

func (m *mockRepository) ListByDate(ctx context.Context, date string, limit, offset int) ([]*ERPatient, int, error) {
	var out []*ERPatient
	for _, p := range m.byID {
		if p.RegistrationDate == date {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

type mockAllocator struct {
	next int64
	err  error
}

func (m *mockAllocator) NextERNumber(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.next++
	return fmt.Sprintf("ER%06d", m.next), nil
}

func TestRegister(t *testing.T) {
	svc := NewService(newMockRepository(), &mockAllocator{})

	created, err := svc.Register(context.Background(), &ERPatient{
		Name:             "Raman",
		Age:              "42",
		RegistrationDate: "2026-08-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ERNumber != "ER000001" {
		t.Errorf("expected ER000001, got %s", created.ERNumber)
	}
	if created.ID == uuid.Nil {
		t.Error("expected a generated ID")
	}
}

func TestRegister_RequiresName(t *testing.T) {
	svc := NewService(newMockRepository(), &mockAllocator{})

	if _, err := svc.Register(context.Background(), &ERPatient{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRegister_DefaultsDate(t *testing.T) {
	svc := NewService(newMockRepository(), &mockAllocator{})

	created, err := svc.Register(context.Background(), &ERPatient{Name: "Raman"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.RegistrationDate == "" {
		t.Error("expected registration date to default to today")
	}
}

func TestRegister_AllocatorDown(t *testing.T) {
	svc := NewService(newMockRepository(), &mockAllocator{err: errors.New("connection refused")})

	if _, err := svc.Register(context.Background(), &ERPatient{Name: "Raman"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestUpdate_ERNumberImmutable(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, &mockAllocator{})

	created, err := svc.Register(context.Background(), &ERPatient{Name: "Raman", RegistrationDate: "2026-08-31"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, &ERPatient{
		Name:     "Raman K",
		ERNumber: "ER999999",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ERNumber != created.ERNumber {
		t.Errorf("er number changed: %s", updated.ERNumber)
	}
	if updated.Name != "Raman K" {
		t.Errorf("expected updated name, got %s", updated.Name)
	}
	if updated.RegistrationDate != "2026-08-31" {
		t.Errorf("expected registration date preserved, got %s", updated.RegistrationDate)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newMockRepository(), &mockAllocator{})

	updated, err := svc.Update(context.Background(), uuid.New(), &ERPatient{Name: "Raman"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil, got %+v", updated)
	}
}

func TestListByDate(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, &mockAllocator{})

	for _, date := range []string{"2026-08-30", "2026-08-31", "2026-08-31"} {
		if _, err := svc.Register(context.Background(), &ERPatient{Name: "P", RegistrationDate: date}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	patients, total, err := svc.ListByDate(context.Background(), "2026-08-31", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(patients) != 2 {
		t.Errorf("expected 2 patients, got %d (total %d)", len(patients), total)
	}
}
