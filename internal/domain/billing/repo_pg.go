package billing

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

type PgBillRepository struct {
	pool *pgxpool.Pool
}

func NewPgBillRepository(pool *pgxpool.Pool) *PgBillRepository {
	return &PgBillRepository{pool: pool}
}

func (r *PgBillRepository) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const billColumns = `
	id, bill_number, er_number, patient_name, age, gender, mobile, dob,
	address, doctor_name, to_char(bill_date, 'YYYY-MM-DD'), line_items,
	discount, subtotal, discount_amount, net_amount, created_at, updated_at`

func scanBill(row pgx.Row) (*StoredBill, error) {
	var b StoredBill
	err := row.Scan(
		&b.ID, &b.BillNumber, &b.ERNumber, &b.Patient.Name, &b.Patient.Age,
		&b.Patient.Gender, &b.Patient.Mobile, &b.Patient.DOB,
		&b.Patient.Address, &b.DoctorName, &b.BillDate, &b.RawLineItems,
		&b.Discount, &b.StoredTotals.Subtotal, &b.StoredTotals.DiscountAmount,
		&b.StoredTotals.NetAmount, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgBillRepository) Create(ctx context.Context, bill *StoredBill) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO er_bill (
			id, bill_number, er_number, patient_name, age, gender, mobile,
			dob, address, doctor_name, bill_date, line_items, discount,
			subtotal, discount_amount, net_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::date, $12,
			$13, $14, $15, $16)`,
		bill.ID, bill.BillNumber, bill.ERNumber, bill.Patient.Name,
		bill.Patient.Age, bill.Patient.Gender, bill.Patient.Mobile,
		bill.Patient.DOB, bill.Patient.Address, bill.DoctorName,
		bill.BillDate, bill.RawLineItems, bill.Discount,
		bill.StoredTotals.Subtotal, bill.StoredTotals.DiscountAmount,
		bill.StoredTotals.NetAmount,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

func (r *PgBillRepository) GetByID(ctx context.Context, id uuid.UUID) (*StoredBill, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+billColumns+` FROM er_bill WHERE id = $1`, id)
	b, err := scanBill(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

func (r *PgBillRepository) GetByBillNumber(ctx context.Context, billNumber string) (*StoredBill, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+billColumns+` FROM er_bill WHERE bill_number = $1`, billNumber)
	b, err := scanBill(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get bill by number: %w", err)
	}
	return b, nil
}

func (r *PgBillRepository) Update(ctx context.Context, bill *StoredBill) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE er_bill SET
			er_number = $2, patient_name = $3, age = $4, gender = $5,
			mobile = $6, dob = $7, address = $8, doctor_name = $9,
			bill_date = $10::date, line_items = $11, discount = $12,
			subtotal = $13, discount_amount = $14, net_amount = $15,
			updated_at = NOW()
		WHERE bill_number = $1`,
		bill.BillNumber, bill.ERNumber, bill.Patient.Name, bill.Patient.Age,
		bill.Patient.Gender, bill.Patient.Mobile, bill.Patient.DOB,
		bill.Patient.Address, bill.DoctorName, bill.BillDate,
		bill.RawLineItems, bill.Discount, bill.StoredTotals.Subtotal,
		bill.StoredTotals.DiscountAmount, bill.StoredTotals.NetAmount,
	)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update bill: %s not found", bill.BillNumber)
	}
	return nil
}

func (r *PgBillRepository) ListByDate(ctx context.Context, date string, limit, offset int) ([]*StoredBill, int, error) {
	return r.list(ctx,
		`WHERE bill_date = $1::date`,
		[]any{date}, limit, offset)
}

func (r *PgBillRepository) ListByDateRange(ctx context.Context, from, to string, limit, offset int) ([]*StoredBill, int, error) {
	return r.list(ctx,
		`WHERE bill_date BETWEEN $1::date AND $2::date`,
		[]any{from, to}, limit, offset)
}

func (r *PgBillRepository) list(ctx context.Context, where string, args []any, limit, offset int) ([]*StoredBill, int, error) {
	var total int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM er_bill `+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count bills: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(
		`SELECT %s FROM er_bill %s ORDER BY bill_number LIMIT $%d OFFSET $%d`,
		billColumns, where, n+1, n+2)
	rows, err := r.conn(ctx).Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var bills []*StoredBill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	return bills, total, rows.Err()
}

// PgBillNumberAllocator draws bill numbers from a database sequence, so
// concurrent clerks can never be handed the same number. Abandoned numbers
// leave gaps; gaps are acceptable, duplicates are not.
type PgBillNumberAllocator struct {
	pool *pgxpool.Pool
}

func NewPgBillNumberAllocator(pool *pgxpool.Pool) *PgBillNumberAllocator {
	return &PgBillNumberAllocator{pool: pool}
}

func (a *PgBillNumberAllocator) NextBillNumber(ctx context.Context) (string, error) {
	var n int64
	if err := a.pool.QueryRow(ctx, `SELECT nextval('er_bill_number_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("next bill number: %w", err)
	}
	return fmt.Sprintf("ERB%06d", n), nil
}
