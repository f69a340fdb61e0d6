package admin

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed rejected"`
}

type BlockSlotRequest struct {
	TurfID   string `json:"turf_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
	Notes    string `json:"notes"`
}
