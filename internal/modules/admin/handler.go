package admin

import (
	"net/http"

	"github.com/xyz1481/turf-booking/internal/domain"
	"github.com/xyz1481/turf-booking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin surface; the caller is expected to gate
// the group with the admin role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/pending", h.ListPending)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.GET("/blocks", h.ListBlocked)
	rg.POST("/blocks", h.BlockSlot)
	rg.DELETE("/blocks", h.UnblockSlot)
	rg.GET("/players", h.ListPlayers)
}

func (h *Handler) ListBookings(c *gin.Context) {
	items, err := h.service.ListAllBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) ListPending(c *gin.Context) {
	items, err := h.service.ListPendingBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load pending bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be confirmed or rejected")
		return
	}

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be confirmed or rejected")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Only pending bookings can be decided")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListBlocked(c *gin.Context) {
	items, err := h.service.ListBlockedSlots(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load blocked slots")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocks": items})
}

func (h *Handler) BlockSlot(c *gin.Context) {
	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.BlockSlot(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or time slot")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Turf not found")
		case ErrAlreadyBlocked:
			response.Error(c, http.StatusConflict, "ALREADY_BLOCKED", "Slot is already blocked")
		case ErrSlotTaken:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Slot is held by an existing booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to block slot")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"block": b})
}

func (h *Handler) UnblockSlot(c *gin.Context) {
	turfID := c.Query("turf_id")
	date := c.Query("date")
	timeSlot := c.Query("time_slot")
	if turfID == "" || date == "" || timeSlot == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "turf_id, date and time_slot are required")
		return
	}

	if err := h.service.UnblockSlot(c.Request.Context(), turfID, date, timeSlot); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No blocked slot for that turf, date and time")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to unblock slot")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unblocked": true})
}

func (h *Handler) ListPlayers(c *gin.Context) {
	items, err := h.service.ListPlayers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load players")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"players": items})
}
