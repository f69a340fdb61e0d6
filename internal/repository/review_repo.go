package repository

import (
	"context"
	"time"

	"github.com/xyz1481/turf-booking/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	TurfID    string    `gorm:"column:turf_id;index"`
	UserID    string    `gorm:"column:user_id;index"`
	Rating    int       `gorm:"column:rating"`
	Comment   string    `gorm:"column:comment;type:text"`
	Date      string    `gorm:"column:date"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:        m.ID,
		TurfID:    m.TurfID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := reviewModel{
		ID:        rv.ID,
		TurfID:    rv.TurfID,
		UserID:    rv.UserID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		Date:      rv.Date,
		CreatedAt: rv.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByTurfID(ctx context.Context, turfID string) ([]domain.Review, error) {
	var ms []reviewModel
	tx := r.db.WithContext(ctx).
		Where("turf_id = ?", turfID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
