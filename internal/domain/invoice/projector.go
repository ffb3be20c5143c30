package invoice

import (
	"strconv"

	"github.com/smrft/er-billing/internal/domain/billing"
)

// Project lays out a bill snapshot as a printable document. The projection
// is pure: it never touches storage, and projecting the same snapshot twice
// yields identical documents. All two-decimal money formatting happens here
// and nowhere else; upstream the amounts stay full-precision floats.
func Project(snap *billing.BillSnapshot) Document {
	rows := make([]Row, 0, len(snap.LineItems))
	for i, item := range snap.LineItems {
		quantity := ""
		if item.Quantity != nil {
			quantity = strconv.Itoa(*item.Quantity)
		}
		rows = append(rows, Row{
			Number:      i + 1,
			Description: item.Name,
			Quantity:    quantity,
			UnitRate:    money(item.UnitRate),
			Amount:      money(item.Amount),
		})
	}

	discount := billing.ParseDiscount(snap.Discount)
	return Document{
		Header: Header{
			HospitalName:    HospitalName,
			HospitalAddress: HospitalAddress,
			HospitalCIN:     HospitalCIN,
			Title:           BillTitle,
			BillNumber:      snap.BillNumber,
			ERNumber:        snap.ERNumber,
			BillDate:        snap.BillDate,
			PatientName:     snap.Patient.Name,
			DoctorName:      snap.DoctorName,
		},
		Rows: rows,
		Totals: TotalsBlock{
			Subtotal:     money(snap.Totals.Subtotal),
			Discount:     money(snap.Totals.DiscountAmount),
			NetAmount:    money(snap.Totals.NetAmount),
			ShowDiscount: discount.Kind != billing.DiscountNone,
		},
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
