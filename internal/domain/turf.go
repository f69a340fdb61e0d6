package domain

import "time"

// Turf is a catalog entry. Rows are loaded at startup and never mutated
// by the ledger; AvailableHours is the venue's fixed slot grid in the
// order it should be offered.
type Turf struct {
	ID             string    `json:"id"`
	Name           string    `json:"name" validate:"required"`
	Location       string    `json:"location"`
	PricePerHour   float64   `json:"price_per_hour" validate:"gt=0"`
	AvailableHours []string  `json:"available_hours"`
	ImageURL       string    `json:"image_url,omitempty"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasSlot reports whether slot is part of the turf's declared grid.
func (t *Turf) HasSlot(slot string) bool {
	for _, h := range t.AvailableHours {
		if h == slot {
			return true
		}
	}
	return false
}
