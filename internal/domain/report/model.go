package report

// Row is one bill in a billing report. Money figures are re-derived from
// the stored line items at read time, so reports agree with reprints even
// for rows whose stored totals predate a correction.
type Row struct {
	BillNumber     string  `json:"bill_number"`
	ERNumber       string  `json:"er_number"`
	PatientName    string  `json:"patient_name"`
	DoctorName     string  `json:"doctor_name"`
	BillDate       string  `json:"bill_date"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	NetAmount      float64 `json:"net_amount"`
}

// Report is a date-range billing report with its aggregate footer.
type Report struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Rows          []Row   `json:"rows"`
	BillCount     int     `json:"bill_count"`
	TotalSubtotal float64 `json:"total_subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TotalNet      float64 `json:"total_net"`
}

// DoctorSummary is one doctor's share of a billing day.
type DoctorSummary struct {
	DoctorName string  `json:"doctor_name"`
	BillCount  int     `json:"bill_count"`
	NetAmount  float64 `json:"net_amount"`
}

// Dashboard is the at-a-glance view of one billing day.
type Dashboard struct {
	Date      string          `json:"date"`
	BillCount int             `json:"bill_count"`
	TotalNet  float64         `json:"total_net"`
	ByDoctor  []DoctorSummary `json:"by_doctor"`
}
