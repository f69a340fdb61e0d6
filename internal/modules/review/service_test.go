package review

import (
	"context"
	"testing"
	"time"

	"github.com/xyz1481/turf-booking/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubReviewRepo struct {
	created *domain.Review
	byTurf  []domain.Review
}

func (s *stubReviewRepo) Create(_ context.Context, rv *domain.Review) error {
	s.created = rv
	return nil
}

func (s *stubReviewRepo) GetByTurfID(_ context.Context, _ string) ([]domain.Review, error) {
	return s.byTurf, nil
}

type stubTurfGate struct {
	err error
}

func (s *stubTurfGate) GetByID(_ context.Context, id string) (*domain.Turf, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Turf{ID: id}, nil
}

func TestCreateReview_AssignsIDAndDate(t *testing.T) {
	repo := &stubReviewRepo{}
	service := NewService(repo, &stubTurfGate{})

	rv, err := service.Create(context.Background(), "user-1", CreateReviewRequest{
		TurfID:  "turf-1",
		Rating:  4,
		Comment: "Great turf with excellent lighting.",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, rv.ID)
	assert.Equal(t, time.Now().Format(domain.DateLayout), rv.Date)
	assert.Equal(t, "user-1", rv.UserID)
	assert.Same(t, rv, repo.created)
}

func TestCreateReview_RatingBounds(t *testing.T) {
	service := NewService(&stubReviewRepo{}, &stubTurfGate{})

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Create(context.Background(), "user-1", CreateReviewRequest{
			TurfID:  "turf-1",
			Rating:  rating,
			Comment: "ok",
		})
		assert.ErrorIs(t, err, ErrInvalidRequest, "rating %d should be rejected", rating)
	}
}

func TestCreateReview_BlankComment(t *testing.T) {
	service := NewService(&stubReviewRepo{}, &stubTurfGate{})

	_, err := service.Create(context.Background(), "user-1", CreateReviewRequest{
		TurfID:  "turf-1",
		Rating:  3,
		Comment: "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCreateReview_UnknownTurf(t *testing.T) {
	service := NewService(&stubReviewRepo{}, &stubTurfGate{err: gorm.ErrRecordNotFound})

	_, err := service.Create(context.Background(), "user-1", CreateReviewRequest{
		TurfID:  "missing",
		Rating:  3,
		Comment: "fine",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByTurf(t *testing.T) {
	repo := &stubReviewRepo{byTurf: []domain.Review{{ID: "rv-1", TurfID: "turf-1", Rating: 4}}}
	service := NewService(repo, &stubTurfGate{})

	out, err := service.GetByTurf(context.Background(), "turf-1")
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}
