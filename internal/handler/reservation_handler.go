package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-seat-reservation/internal/model"
	"go-seat-reservation/internal/service"
	apperrors "go-seat-reservation/pkg/app_errors"
	"go-seat-reservation/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service service.ReservationService
}

func NewReservationHandler(service service.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:id/reserve", h.Reserve)
		router.POST("events/:id/confirm", h.Confirm)
		router.POST("events/:id/release", h.Release)
	}
}

func (h *ReservationHandler) Reserve(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var req model.ReserveRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	resp, err := h.service.Reserve(c, eventID, req)
	if err != nil {
		h.handleReservationError(c, err, "Reserve")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var req model.ConfirmRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	resp, err := h.service.Confirm(c, eventID, req)
	if err != nil {
		h.handleReservationError(c, err, "Confirm")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) Release(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var req model.ReleaseRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	resp, err := h.service.Release(c, eventID, req)
	if err != nil {
		h.handleReservationError(c, err, "Release")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Helper functions

func (h *ReservationHandler) handleReservationError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		log.Warn("Capacity exceeded")
		c.JSON(http.StatusConflict, gin.H{"error": "Capacity exceeded"})
	case errors.Is(err, apperrors.ErrSeatAlreadyHeld):
		log.Warn("Seat already held")
		c.JSON(http.StatusConflict, gin.H{"error": "Seat already held"})
	case errors.Is(err, apperrors.ErrSeatAlreadyBooked):
		log.Warn("Seat already booked")
		c.JSON(http.StatusConflict, gin.H{"error": "Seat already booked"})
	case errors.Is(err, apperrors.ErrHoldExpired):
		log.Warn("Hold expired")
		c.JSON(http.StatusGone, gin.H{"error": "Hold expired"})
	case errors.Is(err, apperrors.ErrHoldNotFound):
		log.Warn("Hold not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Hold not found"})
	case errors.Is(err, apperrors.ErrNotHoldOwner):
		log.Warn("Not hold owner")
		c.JSON(http.StatusForbidden, gin.H{"error": "Not hold owner"})
	case errors.Is(err, apperrors.ErrEventMismatch):
		log.Warn("Event mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event mismatch"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrSeatNotFound):
		log.Warn("Seat not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Seat not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
