package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/xyz1481/turf-booking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	reviews ReviewRepository
	turfs   TurfGate
}

func NewService(reviews ReviewRepository, turfs TurfGate) *Service {
	return &Service{reviews: reviews, turfs: turfs}
}

// Create appends a review with a fresh id and the submission date. There
// is no one-review-per-user rule: the same user may review a turf again.
func (s *Service) Create(ctx context.Context, userID string, req CreateReviewRequest) (*domain.Review, error) {
	if userID == "" || req.Rating < 1 || req.Rating > 5 || strings.TrimSpace(req.Comment) == "" {
		return nil, ErrInvalidRequest
	}

	if _, err := s.turfs.GetByID(ctx, req.TurfID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		ID:      uuid.NewString(),
		TurfID:  req.TurfID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    time.Now().Format(domain.DateLayout),
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	return rv, nil
}

func (s *Service) GetByTurf(ctx context.Context, turfID string) ([]domain.Review, error) {
	return s.reviews.GetByTurfID(ctx, turfID)
}
