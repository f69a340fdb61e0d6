package booking

import (
	"net/http"
	"time"

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

// RegisterPublicRoutes exposes availability lookups (no auth needed to browse).
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/turfs/:id/availability", h.GetAvailability)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/users/me/bookings", h.GetMyBookings)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	turfID := c.Param("id")

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}

	slots, err := h.service.GetAvailableSlots(c.Request.Context(), turfID, date)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Turf not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		}
		return
	}

	response.Success(c, http.StatusOK, AvailabilityResponse{
		TurfID:         turfID,
		Date:           date,
		AvailableSlots: slots,
	})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.UserID = c.GetString("user_id")

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or time slot")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Turf or user not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only players can book slots")
		case ErrSlotTaken:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Slot is not available for the selected date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	items, err := h.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}
