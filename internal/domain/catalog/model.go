package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Procedure maps to the er_procedure table. Rates are maintained by hospital
// administration; the billing flow only ever reads them.
type Procedure struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"procedure_name" json:"procedure_name"`
	Rate      float64   `db:"rate" json:"rate"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Doctor maps to the er_doctor table.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"doctor_name" json:"doctor_name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Snapshot is a point-in-time view of the procedure catalog handed to a
// bill-editing session. It is never refreshed mid-edit, so a rate change in
// the catalog cannot shift amounts under a clerk's feet.
type Snapshot struct {
	rates map[string]float64
}

func NewSnapshot(procedures []*Procedure) *Snapshot {
	rates := make(map[string]float64, len(procedures))
	for _, p := range procedures {
		rates[p.Name] = p.Rate
	}
	return &Snapshot{rates: rates}
}

// Rate returns the base rate for a procedure name, and whether the procedure
// exists in the snapshot.
func (s *Snapshot) Rate(name string) (float64, bool) {
	rate, ok := s.rates[name]
	return rate, ok
}

// Len returns the number of procedures in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.rates)
}
