package booking

import (
	"context"

	"github.com/xyz1481/turf-booking/internal/domain"
)

// BookingRepository defines the ledger storage operations this service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetHeldSlots(ctx context.Context, turfID, date string) ([]string, error)
	IsSlotHeld(ctx context.Context, turfID, date, timeSlot string) (bool, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Booking, error)
}

type TurfRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Turf, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// BookingNotifier pushes booking lifecycle events to connected admin
// dashboards. Implementations must tolerate slow or absent listeners.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
}
