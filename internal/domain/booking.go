package domain

import "time"

// DateLayout is the calendar-date format used across the ledger ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingBlocked   BookingStatus = "blocked"
)

// HoldsSlot reports whether a booking in this status keeps its
// (turf, date, time slot) triple out of the availability list.
// Rejected bookings stay on record but release the slot.
func (s BookingStatus) HoldsSlot() bool {
	return s == BookingPending || s == BookingConfirmed || s == BookingBlocked
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"

	// PaymentNotApplicable is set exactly when Status == BookingBlocked.
	PaymentNotApplicable PaymentStatus = "N/A"
)

// DefaultBlockNotes is used when an admin blocks a slot without a reason.
const DefaultBlockNotes = "Maintenance"

type Booking struct {
	ID            string        `json:"id"`
	TurfID        string        `json:"turf_id" validate:"required"`
	Date          string        `json:"date" validate:"required"`
	TimeSlot      string        `json:"time_slot" validate:"required"`
	UserID        string        `json:"user_id" validate:"required"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
