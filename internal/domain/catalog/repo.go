package catalog

import "context"

// Repository provides read access to the procedure and doctor catalogs.
// Catalog contents are seeded through migrations and managed outside the
// billing flow.
type Repository interface {
	ListProcedures(ctx context.Context) ([]*Procedure, error)
	ListDoctors(ctx context.Context) ([]*Doctor, error)
}
