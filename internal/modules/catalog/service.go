package catalog

import (
	"context"

	"github.com/xyz1481/turf-booking/internal/domain"
)

// TurfRepository is the read-only catalog source. The ledger never
// mutates turfs; they are seeded once and served as-is.
type TurfRepository interface {
	List(ctx context.Context) ([]domain.Turf, error)
	GetByID(ctx context.Context, id string) (*domain.Turf, error)
}

type Service struct {
	turfs TurfRepository
}

func NewService(turfs TurfRepository) *Service {
	return &Service{turfs: turfs}
}

func (s *Service) ListTurfs(ctx context.Context) ([]domain.Turf, error) {
	return s.turfs.List(ctx)
}

func (s *Service) GetTurf(ctx context.Context, id string) (*domain.Turf, error) {
	return s.turfs.GetByID(ctx, id)
}
