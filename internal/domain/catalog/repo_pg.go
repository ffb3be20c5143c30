package catalog

import (
	"context"
	"fmt"

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

func (r *PgRepository) ListProcedures(ctx context.Context) ([]*Procedure, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, procedure_name, rate, created_at
		FROM er_procedure
		ORDER BY procedure_name`)
	if err != nil {
		return nil, fmt.Errorf("list procedures: %w", err)
	}
	defer rows.Close()

	var procedures []*Procedure
	for rows.Next() {
		var p Procedure
		if err := rows.Scan(&p.ID, &p.Name, &p.Rate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan procedure: %w", err)
		}
		procedures = append(procedures, &p)
	}
	return procedures, rows.Err()
}

func (r *PgRepository) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, doctor_name, created_at
		FROM er_doctor
		ORDER BY doctor_name`)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, &d)
	}
	return doctors, rows.Err()
}
