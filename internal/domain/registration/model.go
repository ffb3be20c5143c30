package registration

import (
	"time"

	"github.com/google/uuid"
)

// ERPatient is an emergency-room registration. The ER number is the
// human-facing identifier clerks key bills against; it is allocated once
// at registration and never changes.
type ERPatient struct {
	ID               uuid.UUID `db:"id" json:"id"`
	ERNumber         string    `db:"er_number" json:"er_number"`
	Name             string    `db:"patient_name" json:"patient_name"`
	Age              string    `db:"age" json:"age,omitempty"`
	Gender           string    `db:"gender" json:"gender,omitempty"`
	Mobile           string    `db:"mobile" json:"mobile,omitempty"`
	DOB              string    `db:"dob" json:"dob,omitempty"`
	Address          string    `db:"address" json:"address,omitempty"`
	RegistrationDate string    `db:"registration_date" json:"registration_date"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
