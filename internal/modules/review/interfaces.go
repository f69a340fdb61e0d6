package review

import (
	"context"

	"github.com/xyz1481/turf-booking/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByTurfID(ctx context.Context, turfID string) ([]domain.Review, error)
}

type TurfGate interface {
	GetByID(ctx context.Context, id string) (*domain.Turf, error)
}
