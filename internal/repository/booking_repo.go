package repository

import (
	"context"
	"errors"
	"time"

	"github.com/xyz1481/turf-booking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	TurfID        string    `gorm:"column:turf_id;index:idx_slot_exclusive,unique,where:status <> 'rejected'"`
	Date          string    `gorm:"column:date;index:idx_slot_exclusive,unique,where:status <> 'rejected'"`
	TimeSlot      string    `gorm:"column:time_slot;index:idx_slot_exclusive,unique,where:status <> 'rejected'"`
	UserID        string    `gorm:"column:user_id;index"`
	Status        string    `gorm:"column:status;index"`
	PaymentStatus string    `gorm:"column:payment_status"`
	Notes         *string   `gorm:"column:notes"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:            m.ID,
		TurfID:        m.TurfID,
		Date:          m.Date,
		TimeSlot:      m.TimeSlot,
		UserID:        m.UserID,
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		Notes:         notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:            b.ID,
		TurfID:        b.TurfID,
		Date:          b.Date,
		TimeSlot:      b.TimeSlot,
		UserID:        b.UserID,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Notes:         notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetHeldSlots returns the time slots on turfID/date claimed by a booking
// whose status still holds the slot (pending, confirmed or blocked).
func (r *BookingRepository) GetHeldSlots(ctx context.Context, turfID, date string) ([]string, error) {
	var slots []string
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("turf_id = ? AND date = ? AND status IN ?", turfID, date,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed), string(domain.BookingBlocked)}).
		Pluck("time_slot", &slots)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return slots, nil
}

func (r *BookingRepository) IsSlotHeld(ctx context.Context, turfID, date, timeSlot string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("turf_id = ? AND date = ? AND time_slot = ? AND status IN ?", turfID, date, timeSlot,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed), string(domain.BookingBlocked)}).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindBlocked looks up the blocked booking for a slot triple, if any.
func (r *BookingRepository) FindBlocked(ctx context.Context, turfID, date, timeSlot string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("turf_id = ? AND date = ? AND time_slot = ? AND status = ?",
			turfID, date, timeSlot, string(domain.BookingBlocked)).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// DeleteBlocked removes every blocked booking matching the slot triple
// and reports how many rows went away. Blocked rows are deleted outright
// rather than transitioned.
func (r *BookingRepository) DeleteBlocked(ctx context.Context, turfID, date, timeSlot string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("turf_id = ? AND date = ? AND time_slot = ? AND status = ?",
			turfID, date, timeSlot, string(domain.BookingBlocked)).
		Delete(&bookingModel{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
