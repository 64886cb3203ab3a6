package repository

import (
	"context"
	"testing"
	"time"

	"go-seat-reservation/internal/model"
	apperrors "go-seat-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	repo := NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tx, rollback := setupTestWithTransaction(t)
		defer rollback()

		event := &model.Event{
			Name:       "Summer Concert 2026",
			Date:       time.Now().Add(48 * time.Hour),
			Location:   "Riverside Arena",
			TotalSeats: 3,
		}

		created, err := repo.Create(ctx, tx, event)

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Summer Concert 2026", created.Name)
		assert.Equal(t, "Riverside Arena", created.Location)
		assert.Equal(t, 3, created.TotalSeats)
		assert.NotZero(t, created.CreatedAt)
		assert.NotZero(t, created.UpdatedAt)
	})
}

func TestEventRepository_List(t *testing.T) {
	repo := NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("EmptyList", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		events, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("OrderByCreatedAtDesc", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		id1 := createTestEvent(t, "Event A", 10)
		id2 := createTestEvent(t, "Event B", 10)

		events, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, id2, events[0].ID)
		assert.Equal(t, id1, events[1].ID)
	})
}

func TestEventRepository_FindByID(t *testing.T) {
	repo := NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Find Me", 5)

		found, err := repo.FindByID(ctx, eventID)

		require.NoError(t, err)
		assert.Equal(t, eventID, found.ID)
		assert.Equal(t, "Find Me", found.Name)
		assert.Equal(t, 5, found.TotalSeats)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := repo.FindByID(ctx, 99999)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_FindByIDWithLock(t *testing.T) {
	repo := NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Lock Me", 5)

		tx, rollback := setupTestWithTransaction(t)
		defer rollback()

		found, err := repo.FindByIDWithLock(ctx, tx, eventID)

		require.NoError(t, err)
		assert.Equal(t, eventID, found.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tx, rollback := setupTestWithTransaction(t)
		defer rollback()

		_, err := repo.FindByIDWithLock(ctx, tx, 99999)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}
