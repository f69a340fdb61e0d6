package domain

import "time"

// Review is independent of booking state: a user may review a turf any
// number of times, booked or not.
type Review struct {
	ID        string    `json:"id"`
	TurfID    string    `json:"turf_id" validate:"required"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment" validate:"required"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
