package admin

import (
	"context"
	"errors"
	"time"

	"github.com/xyz1481/turf-booking/internal/domain"

	"github.com/google/uuid"
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

// UpdateBookingStatus applies the admin decision on a pending booking.
// Only pending -> confirmed and pending -> rejected are legal; both are
// terminal for the booking row. A rejected row stays on record but its
// slot becomes bookable again.
func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if newStatus != domain.BookingConfirmed && newStatus != domain.BookingRejected {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b.Status = newStatus
	if s.notifs != nil {
		_ = s.notifs.NotifyBookingDecided(ctx, b)
	}

	return b, nil
}

// BlockSlot reserves a slot for maintenance or events. Blocking skips the
// pending stage entirely: the row is created directly in blocked status
// with payment marked not applicable.
func (s *Service) BlockSlot(ctx context.Context, req BlockSlotRequest, adminID string) (*domain.Booking, error) {
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, ErrValidation
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

	existing, err := s.bookings.FindBlocked(ctx, req.TurfID, req.Date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyBlocked
	}

	held, err := s.bookings.IsSlotHeld(ctx, req.TurfID, req.Date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, ErrSlotTaken
	}

	notes := req.Notes
	if notes == "" {
		notes = domain.DefaultBlockNotes
	}

	b := &domain.Booking{
		ID:            uuid.NewString(),
		TurfID:        req.TurfID,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		UserID:        adminID,
		Status:        domain.BookingBlocked,
		PaymentStatus: domain.PaymentNotApplicable,
		Notes:         notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifySlotBlocked(ctx, b)
	}

	return b, nil
}

// UnblockSlot deletes the blocked row(s) for the triple outright, which
// frees the slot. There is nothing to transition: blocks are removed,
// never rejected or confirmed.
func (s *Service) UnblockSlot(ctx context.Context, turfID, date, timeSlot string) error {
	removed, err := s.bookings.DeleteBlocked(ctx, turfID, date, timeSlot)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFound
	}

	if s.notifs != nil {
		_ = s.notifs.NotifySlotUnblocked(ctx, turfID, date, timeSlot)
	}

	return nil
}

func (s *Service) ListPendingBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetByStatus(ctx, domain.BookingPending)
}

func (s *Service) ListBlockedSlots(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetByStatus(ctx, domain.BookingBlocked)
}

func (s *Service) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) ListPlayers(ctx context.Context) ([]domain.User, error) {
	return s.users.GetByRole(ctx, domain.RolePlayer)
}
