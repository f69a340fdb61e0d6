package booking

type CreateBookingRequest struct {
	TurfID   string `json:"turf_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`

	// UserID is filled from the authenticated context, never from the body.
	UserID string `json:"-"`
}

type AvailabilityResponse struct {
	TurfID         string   `json:"turf_id"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
}
