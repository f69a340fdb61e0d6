package admin

import (
	"context"

	"github.com/xyz1481/turf-booking/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Create(ctx context.Context, b *domain.Booking) error
	FindBlocked(ctx context.Context, turfID, date, timeSlot string) (*domain.Booking, error)
	DeleteBlocked(ctx context.Context, turfID, date, timeSlot string) (int64, error)
	IsSlotHeld(ctx context.Context, turfID, date, timeSlot string) (bool, error)
	GetByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type TurfRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Turf, error)
}

type UserRepository interface {
	GetByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type BookingNotifier interface {
	NotifyBookingDecided(ctx context.Context, b *domain.Booking) error
	NotifySlotBlocked(ctx context.Context, b *domain.Booking) error
	NotifySlotUnblocked(ctx context.Context, turfID, date, timeSlot string) error
}
