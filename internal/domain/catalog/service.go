package catalog

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProcedures(ctx context.Context) ([]*Procedure, error) {
	return s.repo.ListProcedures(ctx)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.repo.ListDoctors(ctx)
}

// Snapshot loads the current procedure catalog as an immutable rate lookup
// for a bill-editing session.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	procedures, err := s.repo.ListProcedures(ctx)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(procedures), nil
}
