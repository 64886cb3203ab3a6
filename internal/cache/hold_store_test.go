package cache

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"go-seat-reservation/config"
	"go-seat-reservation/internal/database"
	apperrors "go-seat-reservation/pkg/app_errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testRdb, err = database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize test redis: %v", err)
	}

	code := m.Run()

	testRdb.Close()
	os.Exit(code)
}

func clearRedis(ctx context.Context) {
	if err := testRdb.FlushDB(ctx).Err(); err != nil {
		panic(err)
	}
}

func TestHoldStore_PlaceHold(t *testing.T) {
	ctx := context.Background()
	store := NewHoldStore(testRdb)
	clearRedis(ctx)
	t.Cleanup(func() {
		clearRedis(ctx)
	})

	t.Run("Success", func(t *testing.T) {
		defer clearRedis(ctx)

		err := store.PlaceHold(ctx, 1, "token-a", "user-a", []string{"S1", "S2"}, time.Minute)
		require.NoError(t, err)

		// both markers point at the hold group
		for _, code := range []string{"S1", "S2"} {
			owner, err := testRdb.Get(ctx, "hold:seat:1:"+code).Result()
			require.NoError(t, err)
			assert.Equal(t, "token-a", owner)
		}

		group, err := store.GetHoldGroup(ctx, "token-a")
		require.NoError(t, err)
		assert.Equal(t, 1, group.EventID)
		assert.Equal(t, "user-a", group.UserID)
		assert.Equal(t, []string{"S1", "S2"}, group.SeatCodes)

		held, err := store.GetHeldCount(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, held)
	})

	t.Run("Failed - SeatAlreadyHeld", func(t *testing.T) {
		defer clearRedis(ctx)

		err := store.PlaceHold(ctx, 1, "token-a", "user-a", []string{"S1"}, time.Minute)
		require.NoError(t, err)

		err = store.PlaceHold(ctx, 1, "token-b", "user-b", []string{"S2", "S1"}, time.Minute)
		assert.ErrorIs(t, err, apperrors.ErrSeatAlreadyHeld)

		// all-or-nothing: the free seat of the rejected group was not set
		exists, err := testRdb.Exists(ctx, "hold:seat:1:S2").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(0), exists)

		_, err = store.GetHoldGroup(ctx, "token-b")
		assert.ErrorIs(t, err, apperrors.ErrHoldNotFound)

		held, err := store.GetHeldCount(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, held)
	})

	t.Run("Same seat code on another event is free", func(t *testing.T) {
		defer clearRedis(ctx)

		err := store.PlaceHold(ctx, 1, "token-a", "user-a", []string{"S1"}, time.Minute)
		require.NoError(t, err)

		err = store.PlaceHold(ctx, 2, "token-b", "user-b", []string{"S1"}, time.Minute)
		assert.NoError(t, err)
	})
}

func TestHoldStore_GetHoldGroup(t *testing.T) {
	ctx := context.Background()
	store := NewHoldStore(testRdb)
	clearRedis(ctx)

	t.Run("Failed - NotFound", func(t *testing.T) {
		_, err := store.GetHoldGroup(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrHoldNotFound)
	})
}

func TestHoldStore_TearDownHold(t *testing.T) {
	ctx := context.Background()
	store := NewHoldStore(testRdb)
	clearRedis(ctx)
	t.Cleanup(func() {
		clearRedis(ctx)
	})

	t.Run("Success", func(t *testing.T) {
		defer clearRedis(ctx)

		err := store.PlaceHold(ctx, 1, "token-a", "user-a", []string{"S1", "S2"}, time.Minute)
		require.NoError(t, err)

		group, err := store.GetHoldGroup(ctx, "token-a")
		require.NoError(t, err)

		err = store.TearDownHold(ctx, group)
		require.NoError(t, err)

		exists, err := testRdb.Exists(ctx, "hold:seat:1:S1", "hold:seat:1:S2").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(0), exists)

		_, err = store.GetHoldGroup(ctx, "token-a")
		assert.ErrorIs(t, err, apperrors.ErrHoldNotFound)

		held, err := store.GetHeldCount(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, held)
	})
}

func TestHoldStore_DecrementHeld(t *testing.T) {
	ctx := context.Background()
	store := NewHoldStore(testRdb)
	clearRedis(ctx)
	t.Cleanup(func() {
		clearRedis(ctx)
	})

	t.Run("Floors at zero", func(t *testing.T) {
		defer clearRedis(ctx)

		err := store.PlaceHold(ctx, 1, "token-a", "user-a", []string{"S1"}, time.Minute)
		require.NoError(t, err)

		err = store.DecrementHeld(ctx, 1, 5)
		require.NoError(t, err)

		held, err := store.GetHeldCount(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, held)
	})

	t.Run("Missing counter stays at zero", func(t *testing.T) {
		defer clearRedis(ctx)

		err := store.DecrementHeld(ctx, 9, 1)
		require.NoError(t, err)

		held, err := store.GetHeldCount(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, 0, held)
	})
}

func TestHoldStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewHoldStore(testRdb)
	clearRedis(ctx)
	t.Cleanup(func() {
		clearRedis(ctx)
	})

	err := store.PlaceHold(ctx, 1, "token-a", "user-a", []string{"S1"}, time.Second)
	require.NoError(t, err)

	time.Sleep(1500 * time.Millisecond)

	// markers and group self-destruct; the counter is compensated by the
	// expiry worker, not by the store itself
	exists, err := testRdb.Exists(ctx, "hold:seat:1:S1").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), exists)

	_, err = store.GetHoldGroup(ctx, "token-a")
	assert.ErrorIs(t, err, apperrors.ErrHoldNotFound)
}

func TestParsePlaceHoldReply(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		code, idx, err := parsePlaceHoldReply([]interface{}{int64(1), int64(0)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), code)
		assert.Equal(t, int64(0), idx)
	})

	t.Run("Rejected with seat index", func(t *testing.T) {
		code, idx, err := parsePlaceHoldReply([]interface{}{int64(-1), int64(2)})
		require.NoError(t, err)
		assert.Equal(t, int64(-1), code)
		assert.Equal(t, int64(2), idx)
	})

	t.Run("Malformed replies error instead of panicking", func(t *testing.T) {
		malformed := []interface{}{
			nil,
			"OK",
			int64(1),
			[]interface{}{},
			[]interface{}{int64(1)},
			[]interface{}{"1", int64(0)},
			[]interface{}{int64(1), "0"},
		}
		for _, reply := range malformed {
			_, _, err := parsePlaceHoldReply(reply)
			assert.Error(t, err)
		}
	})
}

func TestParseSeatMarkerKey(t *testing.T) {
	t.Run("Valid key", func(t *testing.T) {
		marker, ok := parseSeatMarkerKey("hold:seat:42:A-10")
		assert.True(t, ok)
		assert.Equal(t, 42, marker.EventID)
		assert.Equal(t, "A-10", marker.SeatCode)
	})

	t.Run("Seat code with separator", func(t *testing.T) {
		marker, ok := parseSeatMarkerKey("hold:seat:42:row:1")
		assert.True(t, ok)
		assert.Equal(t, "row:1", marker.SeatCode)
	})

	t.Run("Other keys ignored", func(t *testing.T) {
		for _, key := range []string{"hold:group:abc", "event:1:held", "hold:seat:x:S1", "hold:seat:1"} {
			_, ok := parseSeatMarkerKey(key)
			assert.False(t, ok, key)
		}
	})
}
