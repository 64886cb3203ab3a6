package worker

import (
	"context"

	"go-seat-reservation/internal/cache"
	"go-seat-reservation/pkg/logger"

	"go.uber.org/zap"
)

// HoldExpiryWorker compensates the per-event held-count when seat hold
// markers reach their TTL. Expiry deletes the markers and the hold-group
// record by itself but touches no counter, so without this worker the
// held-count would drift upward under expiry-heavy load.
type HoldExpiryWorker interface {
	Start(ctx context.Context) error
}

type HoldExpiryWorkerImpl struct {
	holdStore cache.HoldStore
}

func NewHoldExpiryWorker(holdStore cache.HoldStore) HoldExpiryWorker {
	return &HoldExpiryWorkerImpl{
		holdStore: holdStore,
	}
}

func (w *HoldExpiryWorkerImpl) Start(ctx context.Context) error {
	if err := w.holdStore.EnableExpiryNotifications(ctx); err != nil {
		return err
	}

	markers, err := w.holdStore.SubscribeExpiredMarkers(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for marker := range markers {
			// one expired marker is one seat leaving its hold
			err := w.holdStore.DecrementHeld(ctx, marker.EventID, 1)
			if err != nil {
				log.Error("held-count compensation failed",
					zap.Int("event_id", marker.EventID),
					zap.String("seat_code", marker.SeatCode),
					zap.Error(err))
				continue
			}
			log.Info("hold marker expired",
				zap.Int("event_id", marker.EventID),
				zap.String("seat_code", marker.SeatCode))
		}
	}()

	return nil
}
