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

func setupReservationTestRouter(mockService *mocks.MockReservationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	reservationHandler := NewReservationHandler(mockService)
	reservationHandler.RegisterRoutes(router)

	return router
}

func TestReserve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Reserve(mock.Anything, 1, mock.Anything).Return(&model.ReserveResponse{
			HoldGroupID: "b2f7c3f0-1111-2222-3333-444455556666",
			ExpiresIn:   300,
		}, nil).Once()

		reserveRequest := model.ReserveRequest{
			UserID:    "alice",
			SeatCodes: []string{"A1", "A2"},
		}

		// request
		req := createJSONHTTPRequest("POST", "/api/v1/events/1/reserve", reserveRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// assert
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "hold_group_id")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - SeatAlreadyHeld", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Reserve(mock.Anything, 1, mock.Anything).Return(nil, apperrors.ErrSeatAlreadyHeld).Once()

		reserveRequest := model.ReserveRequest{
			UserID:    "bob",
			SeatCodes: []string{"A1"},
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/reserve", reserveRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - CapacityExceeded", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Reserve(mock.Anything, 1, mock.Anything).Return(nil, apperrors.ErrCapacityExceeded).Once()

		reserveRequest := model.ReserveRequest{
			UserID:    "bob",
			SeatCodes: []string{"A1", "A2", "A3"},
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/reserve", reserveRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - EventNotFound", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Reserve(mock.Anything, 99999, mock.Anything).Return(nil, apperrors.ErrEventNotFound).Once()

		reserveRequest := model.ReserveRequest{
			UserID:    "alice",
			SeatCodes: []string{"A1"},
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/99999/reserve", reserveRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/reserve", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Reserve")
	})

	t.Run("Failed - EmptySeatCodes", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		reserveRequest := model.ReserveRequest{
			UserID:    "alice",
			SeatCodes: []string{},
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/reserve", reserveRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Reserve")
	})

	t.Run("InvalidEventID", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		reserveRequest := model.ReserveRequest{
			UserID:    "alice",
			SeatCodes: []string{"A1"},
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/invalid/reserve", reserveRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Reserve")
	})
}

func TestConfirm(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Confirm(mock.Anything, 1, mock.Anything).Return(&model.ConfirmResponse{
			BookingGroupID: "b2f7c3f0-1111-2222-3333-444455556666",
		}, nil).Once()

		confirmRequest := model.ConfirmRequest{
			UserID:      "alice",
			HoldGroupID: "b2f7c3f0-1111-2222-3333-444455556666",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/confirm", confirmRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "booking_group_id")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - HoldExpired", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Confirm(mock.Anything, 1, mock.Anything).Return(nil, apperrors.ErrHoldExpired).Once()

		confirmRequest := model.ConfirmRequest{
			UserID:      "alice",
			HoldGroupID: "expired-token",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/confirm", confirmRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusGone, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - NotHoldOwner", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Confirm(mock.Anything, 1, mock.Anything).Return(nil, apperrors.ErrNotHoldOwner).Once()

		confirmRequest := model.ConfirmRequest{
			UserID:      "mallory",
			HoldGroupID: "someone-elses-token",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/confirm", confirmRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - EventMismatch", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Confirm(mock.Anything, 2, mock.Anything).Return(nil, apperrors.ErrEventMismatch).Once()

		confirmRequest := model.ConfirmRequest{
			UserID:      "alice",
			HoldGroupID: "token-for-event-1",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/2/confirm", confirmRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - SeatAlreadyBooked", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Confirm(mock.Anything, 1, mock.Anything).Return(nil, apperrors.ErrSeatAlreadyBooked).Once()

		confirmRequest := model.ConfirmRequest{
			UserID:      "alice",
			HoldGroupID: "token",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/confirm", confirmRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/confirm", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Confirm")
	})
}

func TestRelease(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Release(mock.Anything, 1, mock.Anything).Return(&model.ReleaseResponse{
			Released: true,
		}, nil).Once()

		releaseRequest := model.ReleaseRequest{
			UserID:      "alice",
			HoldGroupID: "b2f7c3f0-1111-2222-3333-444455556666",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/release", releaseRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"released":true`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - HoldNotFound", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Release(mock.Anything, 1, mock.Anything).Return(nil, apperrors.ErrHoldNotFound).Once()

		releaseRequest := model.ReleaseRequest{
			UserID:      "alice",
			HoldGroupID: "missing-token",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/release", releaseRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - NotHoldOwner", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		mockService.EXPECT().Release(mock.Anything, 1, mock.Anything).Return(nil, apperrors.ErrNotHoldOwner).Once()

		releaseRequest := model.ReleaseRequest{
			UserID:      "mallory",
			HoldGroupID: "someone-elses-token",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/release", releaseRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/events/1/release", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Release")
	})
}
