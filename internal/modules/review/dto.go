package review

type CreateReviewRequest struct {
	TurfID  string `json:"turf_id" binding:"required" validate:"required"`
	Rating  int    `json:"rating" binding:"required" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"required" validate:"required"`
}
