package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/xyz1481/turf-booking/internal/domain"

	"gorm.io/gorm"
)

type TurfRepository struct {
	db *gorm.DB
}

func NewTurfRepository(db *gorm.DB) *TurfRepository {
	return &TurfRepository{db: db}
}

type turfModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Location       string    `gorm:"column:location"`
	PricePerHour   float64   `gorm:"column:price_per_hour"`
	AvailableHours string    `gorm:"column:available_hours;type:text"`
	ImageURL       *string   `gorm:"column:image_url"`
	Description    *string   `gorm:"column:description"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (turfModel) TableName() string { return "turfs" }

func toDomainTurf(m turfModel) (*domain.Turf, error) {
	var hours []string
	if m.AvailableHours != "" {
		if err := json.Unmarshal([]byte(m.AvailableHours), &hours); err != nil {
			return nil, err
		}
	}

	var imageURL, description string
	if m.ImageURL != nil {
		imageURL = *m.ImageURL
	}
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Turf{
		ID:             m.ID,
		Name:           m.Name,
		Location:       m.Location,
		PricePerHour:   m.PricePerHour,
		AvailableHours: hours,
		ImageURL:       imageURL,
		Description:    description,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

func toTurfModel(t *domain.Turf) (turfModel, error) {
	hours, err := json.Marshal(t.AvailableHours)
	if err != nil {
		return turfModel{}, err
	}

	var imageURL, description *string
	if t.ImageURL != "" {
		v := t.ImageURL
		imageURL = &v
	}
	if t.Description != "" {
		v := t.Description
		description = &v
	}

	return turfModel{
		ID:             t.ID,
		Name:           t.Name,
		Location:       t.Location,
		PricePerHour:   t.PricePerHour,
		AvailableHours: string(hours),
		ImageURL:       imageURL,
		Description:    description,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}, nil
}

func (r *TurfRepository) Create(ctx context.Context, t *domain.Turf) error {
	m, err := toTurfModel(t)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	d, err := toDomainTurf(m)
	if err != nil {
		return err
	}
	*t = *d
	return nil
}

func (r *TurfRepository) GetByID(ctx context.Context, id string) (*domain.Turf, error) {
	var m turfModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTurf(m)
}

func (r *TurfRepository) List(ctx context.Context) ([]domain.Turf, error) {
	var ms []turfModel
	tx := r.db.WithContext(ctx).Order("id ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Turf, 0, len(ms))
	for _, m := range ms {
		t, err := toDomainTurf(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}
