package invoice

// Fixed letterhead for every ER cash bill.
const (
	HospitalName    = "SHANMUGA HOSPITAL LIMITED"
	HospitalAddress = "51/24, Saradha College Road, Salem - 636007"
	HospitalCIN     = "CIN: L85110TZ2020PLC033974"
	BillTitle       = "Cash Bill - ER BILL (SH)"
)

// Header is the identity block printed above the line-item table.
type Header struct {
	HospitalName    string `json:"hospital_name"`
	HospitalAddress string `json:"hospital_address"`
	HospitalCIN     string `json:"hospital_cin"`
	Title           string `json:"title"`
	BillNumber      string `json:"bill_number"`
	ERNumber        string `json:"er_number"`
	BillDate        string `json:"bill_date"`
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
}

// Row is one printed table line. All values are preformatted strings; a
// line whose quantity was never entered prints an empty quantity cell.
type Row struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitRate    string `json:"unit_rate"`
	Amount      string `json:"amount"`
}

// TotalsBlock is the money footer. The discount line is omitted from print
// when no discount was applied.
type TotalsBlock struct {
	Subtotal     string `json:"subtotal"`
	Discount     string `json:"discount,omitempty"`
	NetAmount    string `json:"net_amount"`
	ShowDiscount bool   `json:"show_discount"`
}

// Document is a fully laid out cash bill, ready for any renderer.
type Document struct {
	Header Header      `json:"header"`
	Rows   []Row       `json:"rows"`
	Totals TotalsBlock `json:"totals"`
}
