package notify

import (
	"context"
	"time"

	"github.com/xyz1481/turf-booking/internal/domain"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingRejected  = "booking.rejected"
	EventSlotBlocked      = "slot.blocked"
	EventSlotUnblocked    = "slot.unblocked"
)

type Event struct {
	Type     string          `json:"type"`
	Booking  *domain.Booking `json:"booking,omitempty"`
	TurfID   string          `json:"turf_id,omitempty"`
	Date     string          `json:"date,omitempty"`
	TimeSlot string          `json:"time_slot,omitempty"`
	At       time.Time       `json:"at"`
}

// Sender fans booking lifecycle events out over the hub. It satisfies
// the notifier seams of the booking and admin services.
type Sender struct {
	hub *Hub
}

func NewSender(hub *Hub) *Sender {
	return &Sender{hub: hub}
}

func (s *Sender) NotifyBookingCreated(_ context.Context, b *domain.Booking) error {
	s.hub.Broadcast(Event{Type: EventBookingCreated, Booking: b, At: time.Now()})
	return nil
}

func (s *Sender) NotifyBookingDecided(_ context.Context, b *domain.Booking) error {
	typ := EventBookingConfirmed
	if b.Status == domain.BookingRejected {
		typ = EventBookingRejected
	}
	s.hub.Broadcast(Event{Type: typ, Booking: b, At: time.Now()})
	return nil
}

func (s *Sender) NotifySlotBlocked(_ context.Context, b *domain.Booking) error {
	s.hub.Broadcast(Event{Type: EventSlotBlocked, Booking: b, At: time.Now()})
	return nil
}

func (s *Sender) NotifySlotUnblocked(_ context.Context, turfID, date, timeSlot string) error {
	s.hub.Broadcast(Event{
		Type:     EventSlotUnblocked,
		TurfID:   turfID,
		Date:     date,
		TimeSlot: timeSlot,
		At:       time.Now(),
	})
	return nil
}
