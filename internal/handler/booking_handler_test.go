package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-seat-reservation/internal/model"
	"go-seat-reservation/internal/service/mocks"
	apperrors "go-seat-reservation/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupBookingTestRouter(mockService *mocks.MockBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	bookingHandler := NewBookingHandler(mockService)
	bookingHandler.RegisterRoutes(router)

	return router
}

func TestGetBookingGroup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService)

		mockService.EXPECT().GetGroup(mock.Anything, "group-1").Return([]*model.BookingGroupItem{
			{BookingID: 1, EventID: 1, EventName: "Concert", SeatCode: "A1", UserID: "alice", Status: model.BookingStatusConfirmed},
			{BookingID: 2, EventID: 1, EventName: "Concert", SeatCode: "A2", UserID: "alice", Status: model.BookingStatusConfirmed},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/api/v1/bookings/group-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("BookingNotFound", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService)

		mockService.EXPECT().GetGroup(mock.Anything, "missing").Return(nil, apperrors.ErrBookingNotFound).Once()

		req := httptest.NewRequest("GET", "/api/v1/bookings/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCancelBookingGroup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService)

		mockService.EXPECT().Cancel(mock.Anything, "group-1").Return(&model.CancelResponse{
			BookingGroupID: "group-1",
			Cancelled:      true,
		}, nil).Once()

		req := httptest.NewRequest("POST", "/api/v1/bookings/group-1/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"cancelled":true`)
		mockService.AssertExpectations(t)
	})

	t.Run("BookingNotFound", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService)

		mockService.EXPECT().Cancel(mock.Anything, "missing").Return(nil, apperrors.ErrBookingNotFound).Once()

		req := httptest.NewRequest("POST", "/api/v1/bookings/missing/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService)

		mockService.EXPECT().Cancel(mock.Anything, "group-1").Return(nil, apperrors.ErrInvalidBooking).Once()

		req := httptest.NewRequest("POST", "/api/v1/bookings/group-1/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})
}
