package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-seat-reservation/internal/model"
	apperrors "go-seat-reservation/pkg/app_errors"
	"go-seat-reservation/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ExpiredMarker identifies a seat hold marker that reached its TTL without
// being confirmed or released.
type ExpiredMarker struct {
	EventID  int
	SeatCode string
}

type HoldStore interface {
	// PlaceHold sets every seat marker, the hold-group record and the
	// held-count increment as a single atomic unit (Lua script). Fails with
	// ErrSeatAlreadyHeld if any marker already exists; in that case nothing
	// is written.
	PlaceHold(ctx context.Context, eventID int, token string, userID string, seatCodes []string, ttl time.Duration) error
	// GetHoldGroup reads the hold-group record; ErrHoldNotFound if absent.
	GetHoldGroup(ctx context.Context, token string) (*model.HoldGroup, error)
	// TearDownHold deletes the group's seat markers, decrements the
	// held-count by the group size and deletes the group record. The steps
	// are issued as independent commands, not one atomic unit.
	TearDownHold(ctx context.Context, group *model.HoldGroup) error
	// GetHeldCount reads the per-event count of currently held seats.
	GetHeldCount(ctx context.Context, eventID int) (int, error)
	// DecrementHeld decrements the held-count, floored at zero.
	DecrementHeld(ctx context.Context, eventID int, by int) error
	// EnableExpiryNotifications turns on keyspace expiry events ("Ex").
	EnableExpiryNotifications(ctx context.Context) error
	// SubscribeExpiredMarkers delivers seat markers as their TTL fires.
	SubscribeExpiredMarkers(ctx context.Context) (<-chan ExpiredMarker, error)
}

type HoldStoreImpl struct {
	client *redis.Client
}

func NewHoldStore(client *redis.Client) HoldStore {
	return &HoldStoreImpl{
		client: client,
	}
}

const seatMarkerPrefix = "hold:seat:"

// seat marker key; the event id rides in the key name so expiry
// notifications can be attributed to an event
func (s *HoldStoreImpl) seatMarkerKey(eventID int, seatCode string) string {
	return fmt.Sprintf("%s%d:%s", seatMarkerPrefix, eventID, seatCode)
}

func (s *HoldStoreImpl) holdGroupKey(token string) string {
	return fmt.Sprintf("hold:group:%s", token)
}

func (s *HoldStoreImpl) heldCountKey(eventID int) string {
	return fmt.Sprintf("event:%d:held", eventID)
}

func (s *HoldStoreImpl) PlaceHold(ctx context.Context, eventID int, token string, userID string, seatCodes []string, ttl time.Duration) error {
	keys := make([]string, 0, len(seatCodes)+2)
	for _, code := range seatCodes {
		keys = append(keys, s.seatMarkerKey(eventID, code))
	}
	keys = append(keys, s.holdGroupKey(token), s.heldCountKey(eventID))

	script := `
		-- KEYS[1..n]   seat marker keys
		-- KEYS[n+1]    hold-group key
		-- KEYS[n+2]    held-count key
		local n = tonumber(ARGV[1])
		local token = ARGV[2]
		local user_id = ARGV[3]
		local event_id = ARGV[4]
		local seats = ARGV[5]
		local ttl = tonumber(ARGV[6])

		-- check every marker before writing anything
		for i = 1, n do
			if redis.call('EXISTS', KEYS[i]) == 1 then
				return {-1, i} -- seat i already held
			end
		end

		-- all free: set every marker, the group record and the counter
		for i = 1, n do
			redis.call('SET', KEYS[i], token, 'EX', ttl)
		end
		redis.call('HSET', KEYS[n+1], 'event_id', event_id, 'user_id', user_id, 'seats', seats)
		redis.call('EXPIRE', KEYS[n+1], ttl)
		redis.call('INCRBY', KEYS[n+2], n)

		return {1, 0}
	`

	result, err := s.client.Eval(ctx, script, keys,
		len(seatCodes), token, userID, eventID,
		strings.Join(seatCodes, ","), int(ttl.Seconds()),
	).Result()
	if err != nil {
		return err
	}

	code, idx, err := parsePlaceHoldReply(result)
	if err != nil {
		return err
	}

	switch code {
	case 1:
		return nil
	case -1:
		if idx >= 1 && int(idx) <= len(seatCodes) {
			logger.WithComponent("cache").Info("bulk hold rejected",
				zap.Int("event_id", eventID),
				zap.String("seat_code", seatCodes[idx-1]))
		}
		return apperrors.ErrSeatAlreadyHeld
	default:
		return errors.New("unexpected result")
	}
}

// parsePlaceHoldReply validates the {code, value} pair the bulk-hold script
// returns. Redis delivers Lua integer replies as int64.
func parsePlaceHoldReply(result interface{}) (int64, int64, error) {
	resSlice, ok := result.([]interface{})
	if !ok || len(resSlice) != 2 {
		return 0, 0, errors.New("unexpected result")
	}

	code, ok := resSlice[0].(int64)
	if !ok {
		return 0, 0, errors.New("unexpected result")
	}

	idx, ok := resSlice[1].(int64)
	if !ok {
		return 0, 0, errors.New("unexpected result")
	}

	return code, idx, nil
}

func (s *HoldStoreImpl) GetHoldGroup(ctx context.Context, token string) (*model.HoldGroup, error) {
	result, err := s.client.HGetAll(ctx, s.holdGroupKey(token)).Result()
	if err != nil {
		return nil, err
	}

	// an expired or consumed group simply has no key
	if len(result) == 0 {
		return nil, apperrors.ErrHoldNotFound
	}

	eventID, err := strconv.Atoi(result["event_id"])
	if err != nil {
		return nil, fmt.Errorf("invalid event_id: %v", err)
	}

	return &model.HoldGroup{
		Token:     token,
		EventID:   eventID,
		UserID:    result["user_id"],
		SeatCodes: strings.Split(result["seats"], ","),
	}, nil
}

func (s *HoldStoreImpl) TearDownHold(ctx context.Context, group *model.HoldGroup) error {
	for _, code := range group.SeatCodes {
		if err := s.client.Del(ctx, s.seatMarkerKey(group.EventID, code)).Err(); err != nil {
			return err
		}
	}

	if err := s.DecrementHeld(ctx, group.EventID, group.Size()); err != nil {
		return err
	}

	return s.client.Del(ctx, s.holdGroupKey(group.Token)).Err()
}

func (s *HoldStoreImpl) GetHeldCount(ctx context.Context, eventID int) (int, error) {
	val, err := s.client.Get(ctx, s.heldCountKey(eventID)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

func (s *HoldStoreImpl) DecrementHeld(ctx context.Context, eventID int, by int) error {
	// floored at zero: expiry notifications are fire-and-forget, and a
	// missed window must not drive the counter negative
	script := `
		local key = KEYS[1]
		local by = tonumber(ARGV[1])
		local current = tonumber(redis.call('GET', key) or '0')
		if current <= by then
			redis.call('SET', key, 0)
			return 0
		end
		return redis.call('DECRBY', key, by)
	`

	return s.client.Eval(ctx, script, []string{s.heldCountKey(eventID)}, by).Err()
}

func (s *HoldStoreImpl) EnableExpiryNotifications(ctx context.Context) error {
	return s.client.ConfigSet(ctx, "notify-keyspace-events", "Ex").Err()
}

func (s *HoldStoreImpl) SubscribeExpiredMarkers(ctx context.Context) (<-chan ExpiredMarker, error) {
	channel := fmt.Sprintf("__keyevent@%d__:expired", s.client.Options().DB)
	pubsub := s.client.PSubscribe(ctx, channel)

	// confirm the subscription before delivering
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	out := make(chan ExpiredMarker)
	go func() {
		defer close(out)
		defer pubsub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				marker, ok := parseSeatMarkerKey(msg.Payload)
				if !ok {
					continue
				}
				select {
				case out <- marker:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func parseSeatMarkerKey(key string) (ExpiredMarker, bool) {
	rest, ok := strings.CutPrefix(key, seatMarkerPrefix)
	if !ok {
		return ExpiredMarker{}, false
	}

	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 {
		return ExpiredMarker{}, false
	}

	eventID, err := strconv.Atoi(parts[0])
	if err != nil {
		return ExpiredMarker{}, false
	}

	return ExpiredMarker{EventID: eventID, SeatCode: parts[1]}, true
}
