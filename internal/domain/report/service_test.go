package report

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"

	"github.com/smrft/er-billing/internal/domain/billing"
)

type mockBillRepository struct {
	bills []*billing.StoredBill
}

func (m *mockBillRepository) Create(ctx context.Context, bill *billing.StoredBill) error {
	m.bills = append(m.bills, bill)
	return nil
}

func (m *mockBillRepository) GetByID(ctx context.Context, id uuid.UUID) (*billing.StoredBill, error) {
	return nil, nil
}

func (m *mockBillRepository) GetByBillNumber(ctx context.Context, billNumber string) (*billing.StoredBill, error) {
	return nil, nil
}

func (m *mockBillRepository) Update(ctx context.Context, bill *billing.StoredBill) error {
	return nil
}

func (m *mockBillRepository) ListByDate(ctx context.Context, date string, limit, offset int) ([]*billing.StoredBill, int, error) {
	return m.filter(func(b *billing.StoredBill) bool { return b.BillDate == date }, limit, offset)
}

func (m *mockBillRepository) ListByDateRange(ctx context.Context, from, to string, limit, offset int) ([]*billing.StoredBill, int, error) {
	return m.filter(func(b *billing.StoredBill) bool {
		return b.BillDate >= from && b.BillDate <= to
	}, limit, offset)
}

func (m *mockBillRepository) filter(keep func(*billing.StoredBill) bool, limit, offset int) ([]*billing.StoredBill, int, error) {
	var matched []*billing.StoredBill
	for _, b := range m.bills {
		if keep(b) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].BillNumber < matched[j].BillNumber })
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func storedBill(number, date, doctor, items string) *billing.StoredBill {
	return &billing.StoredBill{
		ID:           uuid.New(),
		BillNumber:   number,
		ERNumber:     "ER000001",
		Patient:      billing.Patient{Name: "Raman"},
		DoctorName:   doctor,
		BillDate:     date,
		RawLineItems: []byte(items),
	}
}

func TestBuildReport(t *testing.T) {
	repo := &mockBillRepository{bills: []*billing.StoredBill{
		storedBill("ERB000001", "2026-08-30", "Dr. Kumar",
			`[{"name":"CT Scan","quantity":1,"unit_rate":1200}]`),
		storedBill("ERB000002", "2026-08-31", "Dr. Priya",
			`[{"name":"X-Ray","quantity":2,"unit_rate":350}]`),
		storedBill("ERB000003", "2026-09-02", "Dr. Kumar",
			`[{"name":"Dressing","quantity":1,"unit_rate":100}]`),
	}}
	svc := NewService(repo)

	report, err := svc.BuildReport(context.Background(), "2026-08-30", "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.BillCount != 2 {
		t.Fatalf("expected 2 bills, got %d", report.BillCount)
	}
	if report.TotalSubtotal != 1900 || report.TotalNet != 1900 {
		t.Errorf("unexpected totals: %+v", report)
	}
	if report.Rows[0].BillNumber != "ERB000001" || report.Rows[1].BillNumber != "ERB000002" {
		t.Errorf("unexpected row order: %+v", report.Rows)
	}
}

func TestBuildReport_RederivesLegacyRows(t *testing.T) {
	legacy := storedBill("ERB000001", "2024-01-10", "Dr. Kumar", `"CT Scan, Dressing"`)
	// A stored total that disagrees with the line items must not leak out.
	legacy.StoredTotals = billing.BillTotals{NetAmount: 9999}
	svc := NewService(&mockBillRepository{bills: []*billing.StoredBill{legacy}})

	report, err := svc.BuildReport(context.Background(), "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalNet != 0 {
		t.Errorf("expected re-derived net 0 for legacy rows, got %v", report.TotalNet)
	}
}

func TestBuildReport_BadRange(t *testing.T) {
	svc := NewService(&mockBillRepository{})

	if _, err := svc.BuildReport(context.Background(), "2026-09-01", "2026-08-01"); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if _, err := svc.BuildReport(context.Background(), "", "2026-08-01"); err == nil {
		t.Fatal("expected error for missing from date")
	}
}

func TestBuildDashboard(t *testing.T) {
	repo := &mockBillRepository{bills: []*billing.StoredBill{
		storedBill("ERB000001", "2026-08-31", "Dr. Kumar",
			`[{"name":"CT Scan","quantity":1,"unit_rate":1200}]`),
		storedBill("ERB000002", "2026-08-31", "Dr. Kumar",
			`[{"name":"Dressing","quantity":2,"unit_rate":100}]`),
		storedBill("ERB000003", "2026-08-31", "Dr. Priya",
			`[{"name":"X-Ray","quantity":1,"unit_rate":350}]`),
		storedBill("ERB000004", "2026-08-30", "Dr. Priya",
			`[{"name":"X-Ray","quantity":1,"unit_rate":350}]`),
	}}
	svc := NewService(repo)

	dash, err := svc.BuildDashboard(context.Background(), "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.BillCount != 3 {
		t.Fatalf("expected 3 bills, got %d", dash.BillCount)
	}
	if dash.TotalNet != 1750 {
		t.Errorf("expected total net 1750, got %v", dash.TotalNet)
	}
	if len(dash.ByDoctor) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(dash.ByDoctor))
	}
	// Sorted by doctor name.
	if dash.ByDoctor[0].DoctorName != "Dr. Kumar" || dash.ByDoctor[0].BillCount != 2 || dash.ByDoctor[0].NetAmount != 1400 {
		t.Errorf("unexpected summary: %+v", dash.ByDoctor[0])
	}
	if dash.ByDoctor[1].DoctorName != "Dr. Priya" || dash.ByDoctor[1].NetAmount != 350 {
		t.Errorf("unexpected summary: %+v", dash.ByDoctor[1])
	}
}

func TestBuildDashboard_EmptyDay(t *testing.T) {
	svc := NewService(&mockBillRepository{})

	dash, err := svc.BuildDashboard(context.Background(), "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.BillCount != 0 || len(dash.ByDoctor) != 0 {
		t.Errorf("expected empty dashboard, got %+v", dash)
	}
}
