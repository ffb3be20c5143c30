package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smrft/er-billing/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientColumns = `
	id, er_number, patient_name, age, gender, mobile, dob, address,
	to_char(registration_date, 'YYYY-MM-DD'), created_at, updated_at`

func scanPatient(row pgx.Row) (*ERPatient, error) {
	var p ERPatient
	err := row.Scan(
		&p.ID, &p.ERNumber, &p.Name, &p.Age, &p.Gender, &p.Mobile, &p.DOB,
		&p.Address, &p.RegistrationDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgRepository) Create(ctx context.Context, patient *ERPatient) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO er_patient (
			id, er_number, patient_name, age, gender, mobile, dob, address,
			registration_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::date)`,
		patient.ID, patient.ERNumber, patient.Name, patient.Age,
		patient.Gender, patient.Mobile, patient.DOB, patient.Address,
		patient.RegistrationDate,
	)
	if err != nil {
		return fmt.Errorf("insert er patient: %w", err)
	}
	return nil
}

func (r *PgRepository) GetByID(ctx context.Context, id uuid.UUID) (*ERPatient, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientColumns+` FROM er_patient WHERE id = $1`, id)
	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get er patient: %w", err)
	}
	return p, nil
}

func (r *PgRepository) GetByERNumber(ctx context.Context, erNumber string) (*ERPatient, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientColumns+` FROM er_patient WHERE er_number = $1`, erNumber)
	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get er patient by number: %w", err)
	}
	return p, nil
}

func (r *PgRepository) Update(ctx context.Context, patient *ERPatient) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE er_patient SET
			patient_name = $2, age = $3, gender = $4, mobile = $5, dob = $6,
			address = $7, registration_date = $8::date, updated_at = NOW()
		WHERE id = $1`,
		patient.ID, patient.Name, patient.Age, patient.Gender, patient.Mobile,
		patient.DOB, patient.Address, patient.RegistrationDate,
	)
	if err != nil {
		return fmt.Errorf("update er patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update er patient: %s not found", patient.ID)
	}
	return nil
}

func (r *PgRepository) ListByDate(ctx context.Context, date string, limit, offset int) ([]*ERPatient, int, error) {
	var total int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM er_patient WHERE registration_date = $1::date`,
		date).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count er patients: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientColumns+` FROM er_patient
		 WHERE registration_date = $1::date
		 ORDER BY er_number LIMIT $2 OFFSET $3`,
		date, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list er patients: %w", err)
	}
	defer rows.Close()

	var patients []*ERPatient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan er patient: %w", err)
		}
		patients = append(patients, p)
	}
	return patients, total, rows.Err()
}

// PgERNumberAllocator draws ER numbers from a database sequence.
type PgERNumberAllocator struct {
	pool *pgxpool.Pool
}

func NewPgERNumberAllocator(pool *pgxpool.Pool) *PgERNumberAllocator {
	return &PgERNumberAllocator{pool: pool}
}

func (a *PgERNumberAllocator) NextERNumber(ctx context.Context) (string, error) {
	var n int64
	if err := a.pool.QueryRow(ctx, `SELECT nextval('er_number_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("next er number: %w", err)
	}
	return fmt.Sprintf("ER%06d", n), nil
}
