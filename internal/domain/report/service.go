package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/smrft/er-billing/internal/domain/billing"
)

// Reports read through the bill repository rather than keeping their own
// aggregates, so there is nothing to drift out of sync.
type Service struct {
	bills billing.BillRepository
}

func NewService(bills billing.BillRepository) *Service {
	return &Service{bills: bills}
}

// reportBatchSize bounds how many bills are decoded per repository call
// while walking a date range.
const reportBatchSize = 500

// BuildReport assembles the billing report for an inclusive date range.
func (s *Service) BuildReport(ctx context.Context, from, to string) (*Report, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("from and to dates are required")
	}
	if from > to {
		return nil, fmt.Errorf("from date is after to date")
	}

	report := &Report{From: from, To: to, Rows: []Row{}}
	for offset := 0; ; offset += reportBatchSize {
		recs, total, err := s.bills.ListByDateRange(ctx, from, to, reportBatchSize, offset)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			snap, err := billing.SnapshotFromRecord(rec)
			if err != nil {
				return nil, err
			}
			report.Rows = append(report.Rows, Row{
				BillNumber:     snap.BillNumber,
				ERNumber:       snap.ERNumber,
				PatientName:    snap.Patient.Name,
				DoctorName:     snap.DoctorName,
				BillDate:       snap.BillDate,
				Subtotal:       snap.Totals.Subtotal,
				DiscountAmount: snap.Totals.DiscountAmount,
				NetAmount:      snap.Totals.NetAmount,
			})
			report.BillCount++
			report.TotalSubtotal += snap.Totals.Subtotal
			report.TotalDiscount += snap.Totals.DiscountAmount
			report.TotalNet += snap.Totals.NetAmount
		}
		if offset+len(recs) >= total || len(recs) == 0 {
			break
		}
	}
	return report, nil
}

// BuildDashboard summarizes one billing day, broken down per doctor.
func (s *Service) BuildDashboard(ctx context.Context, date string) (*Dashboard, error) {
	if date == "" {
		return nil, fmt.Errorf("date is required")
	}

	dash := &Dashboard{Date: date, ByDoctor: []DoctorSummary{}}
	perDoctor := make(map[string]*DoctorSummary)
	for offset := 0; ; offset += reportBatchSize {
		recs, total, err := s.bills.ListByDate(ctx, date, reportBatchSize, offset)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			snap, err := billing.SnapshotFromRecord(rec)
			if err != nil {
				return nil, err
			}
			dash.BillCount++
			dash.TotalNet += snap.Totals.NetAmount

			summary, ok := perDoctor[snap.DoctorName]
			if !ok {
				summary = &DoctorSummary{DoctorName: snap.DoctorName}
				perDoctor[snap.DoctorName] = summary
			}
			summary.BillCount++
			summary.NetAmount += snap.Totals.NetAmount
		}
		if offset+len(recs) >= total || len(recs) == 0 {
			break
		}
	}

	for _, summary := range perDoctor {
		dash.ByDoctor = append(dash.ByDoctor, *summary)
	}
	sort.Slice(dash.ByDoctor, func(i, j int) bool {
		return dash.ByDoctor[i].DoctorName < dash.ByDoctor[j].DoctorName
	})
	return dash, nil
}
