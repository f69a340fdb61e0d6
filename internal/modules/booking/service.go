package booking

import (
	"context"
	"errors"
	"time"

	"github.com/xyz1481/turf-booking/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	turfs    TurfRepository
	users    UserRepository
	notifs   BookingNotifier
}

func NewService(
	bookings BookingRepository,
	turfs TurfRepository,
	users UserRepository,
	notifs BookingNotifier,
) *Service {
	return &Service{
		bookings: bookings,
		turfs:    turfs,
		users:    users,
		notifs:   notifs,
	}
}

// GetAvailableSlots returns the turf's declared hours, in declared order,
// minus every slot held by a pending, confirmed or blocked booking on
// that date. A date with no bookings yields the full grid.
func (s *Service) GetAvailableSlots(ctx context.Context, turfID, date string) ([]string, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, ErrValidation
	}

	turf, err := s.turfs.GetByID(ctx, turfID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	held, err := s.bookings.GetHeldSlots(ctx, turfID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(held))
	for _, slot := range held {
		taken[slot] = true
	}

	out := make([]string, 0, len(turf.AvailableHours))
	for _, slot := range turf.AvailableHours {
		if !taken[slot] {
			out = append(out, slot)
		}
	}
	return out, nil
}

// CreateBooking appends a pending, unpaid booking for the requested slot.
// Unlike the lookup-then-trust flow this re-validates slot freedom at
// write time, so a stale availability view surfaces as ErrSlotTaken
// instead of a double booking.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, ErrValidation
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Role != domain.RolePlayer {
		return nil, ErrForbidden
	}

	turf, err := s.turfs.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !turf.HasSlot(req.TimeSlot) {
		return nil, ErrValidation
	}

	held, err := s.bookings.IsSlotHeld(ctx, req.TurfID, req.Date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, ErrSlotTaken
	}

	b := &domain.Booking{
		ID:            uuid.NewString(),
		TurfID:        req.TurfID,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		UserID:        req.UserID,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_slot_exclusive" {
				return nil, ErrSlotTaken
			}
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

func (s *Service) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.GetByUserID(ctx, userID)
}
