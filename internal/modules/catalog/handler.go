package catalog

import (
	"errors"
	"net/http"

	"github.com/xyz1481/turf-booking/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/turfs", h.ListTurfs)
	rg.GET("/turfs/:id", h.GetTurf)
}

func (h *Handler) ListTurfs(c *gin.Context) {
	turfs, err := h.service.ListTurfs(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load turfs")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"turfs": turfs})
}

func (h *Handler) GetTurf(c *gin.Context) {
	turf, err := h.service.GetTurf(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Turf not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load turf")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"turf": turf})
}
