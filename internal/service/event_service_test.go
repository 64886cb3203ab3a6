package service

import (
	"context"
	"testing"
	"time"

	"go-seat-reservation/internal/model"
	apperrors "go-seat-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	stack := newReservationStack(5 * time.Minute)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		created, err := stack.events.Create(ctx, model.CreateEventRequest{
			Name:      "Provisioned Concert",
			Date:      time.Now().Add(72 * time.Hour),
			Location:  "Main Hall",
			SeatCodes: []string{"A1", "A2", "B1"},
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, 3, created.TotalSeats)

		seats, err := stack.events.ListSeats(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, seats, 3)
		assert.Equal(t, "A1", seats[0].SeatCode)
		assert.Equal(t, "B1", seats[2].SeatCode)
	})

	t.Run("Failed - DuplicateSeatCodes", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := stack.events.Create(ctx, model.CreateEventRequest{
			Name:      "Broken Concert",
			Date:      time.Now().Add(72 * time.Hour),
			Location:  "Main Hall",
			SeatCodes: []string{"A1", "A1"},
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		events, err := stack.events.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("Failed - SeatCodeWithComma", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := stack.events.Create(ctx, model.CreateEventRequest{
			Name:      "Broken Concert",
			Date:      time.Now().Add(72 * time.Hour),
			Location:  "Main Hall",
			SeatCodes: []string{"A,B"},
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestEventService_ListSeats(t *testing.T) {
	stack := newReservationStack(5 * time.Minute)
	ctx := context.Background()

	t.Run("Failed - EventNotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := stack.events.ListSeats(ctx, 99999)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventService_GetAvailability(t *testing.T) {
	stack := newReservationStack(5 * time.Minute)
	ctx := context.Background()

	t.Run("FreshEvent", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEventWithSeats(t, "Fresh Concert", []string{"A1", "A2"})

		availability, err := stack.events.GetAvailability(ctx, eventID)

		require.NoError(t, err)
		assert.Equal(t, 2, availability.TotalSeats)
		assert.Equal(t, 0, availability.ConfirmedSeats)
		assert.Equal(t, 0, availability.HeldSeats)
		assert.Equal(t, 2, availability.AvailableSeats)
	})

	t.Run("Failed - EventNotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := stack.events.GetAvailability(ctx, 99999)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}
