package invoice

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// A4 with the line-item table spread across the printable width.
const (
	pageMargin  = 12.0
	tableWidth  = 186.0
	colNumber   = 12.0
	colQuantity = 20.0
	colRate     = 30.0
	colAmount   = 34.0
	colDesc     = tableWidth - colNumber - colQuantity - colRate - colAmount
	rowHeight   = 7.0
)

// WritePDF renders a projected document as a cash bill PDF.
func WritePDF(doc Document, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(tableWidth, 8, doc.Header.HospitalName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(tableWidth, 5, doc.Header.HospitalAddress, "", 1, "C", false, 0, "")
	pdf.CellFormat(tableWidth, 5, doc.Header.HospitalCIN, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(tableWidth, 7, doc.Header.Title, "TB", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	half := tableWidth / 2
	pdf.CellFormat(half, 6, "Bill No: "+doc.Header.BillNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Date: "+doc.Header.BillDate, "", 1, "R", false, 0, "")
	pdf.CellFormat(half, 6, "ER No: "+doc.Header.ERNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Doctor: "+doc.Header.DoctorName, "", 1, "R", false, 0, "")
	pdf.CellFormat(tableWidth, 6, "Patient: "+doc.Header.PatientName, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(colNumber, rowHeight, "No", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colDesc, rowHeight, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colQuantity, rowHeight, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colRate, rowHeight, "Cost", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, rowHeight, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, row := range doc.Rows {
		pdf.CellFormat(colNumber, rowHeight, fmt.Sprintf("%d", row.Number), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colDesc, rowHeight, row.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQuantity, rowHeight, row.Quantity, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colRate, rowHeight, row.UnitRate, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, rowHeight, row.Amount, "1", 1, "R", false, 0, "")
	}

	labelWidth := tableWidth - colAmount
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(labelWidth, rowHeight, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, rowHeight, doc.Totals.Subtotal, "1", 1, "R", false, 0, "")
	if doc.Totals.ShowDiscount {
		pdf.CellFormat(labelWidth, rowHeight, "Discount", "1", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, rowHeight, doc.Totals.Discount, "1", 1, "R", false, 0, "")
	}
	pdf.CellFormat(labelWidth, rowHeight, "Net Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, rowHeight, doc.Totals.NetAmount, "1", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render invoice pdf: %w", err)
	}
	return nil
}
