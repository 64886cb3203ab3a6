package handler

import (
	"errors"
	"net/http"

	"go-seat-reservation/internal/service"
	apperrors "go-seat-reservation/pkg/app_errors"
	"go-seat-reservation/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("bookings/:groupId", h.GetGroup)
		router.POST("bookings/:groupId/cancel", h.Cancel)
	}
}

func (h *BookingHandler) GetGroup(c *gin.Context) {
	groupID := c.Param("groupId")

	items, err := h.service.GetGroup(c, groupID)
	if err != nil {
		h.handleBookingError(c, err, "GetGroup")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	groupID := c.Param("groupId")

	resp, err := h.service.Cancel(c, groupID)
	if err != nil {
		h.handleBookingError(c, err, "Cancel")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) handleBookingError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, apperrors.ErrInvalidBooking):
		log.Warn("Invalid booking")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
