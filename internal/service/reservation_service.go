package service

import (
	"context"
	"strings"
	"time"

	"go-seat-reservation/internal/cache"
	"go-seat-reservation/internal/model"
	"go-seat-reservation/internal/repository"
	apperrors "go-seat-reservation/pkg/app_errors"
	"go-seat-reservation/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ReservationService interface {
	// Reserve places a time-bounded hold on a set of seats.
	Reserve(ctx context.Context, eventID int, req model.ReserveRequest) (*model.ReserveResponse, error)
	// Confirm converts a hold into durable bookings, all-or-nothing.
	Confirm(ctx context.Context, eventID int, req model.ConfirmRequest) (*model.ConfirmResponse, error)
	// Release gives a hold back before it expires.
	Release(ctx context.Context, eventID int, req model.ReleaseRequest) (*model.ReleaseResponse, error)
}

type ReservationServiceImpl struct {
	pool              *pgxpool.Pool
	eventRepository   repository.EventRepository
	bookingRepository repository.BookingRepository
	holdStore         cache.HoldStore
	bookingService    BookingService
	holdTTL           time.Duration
}

func NewReservationService(
	pool *pgxpool.Pool,
	eventRepository repository.EventRepository,
	bookingRepository repository.BookingRepository,
	holdStore cache.HoldStore,
	bookingService BookingService,
	holdTTL time.Duration,
) ReservationService {
	return &ReservationServiceImpl{
		pool:              pool,
		eventRepository:   eventRepository,
		bookingRepository: bookingRepository,
		holdStore:         holdStore,
		bookingService:    bookingService,
		holdTTL:           holdTTL,
	}
}

func (s *ReservationServiceImpl) Reserve(ctx context.Context, eventID int, req model.ReserveRequest) (*model.ReserveResponse, error) {
	if len(req.SeatCodes) == 0 {
		return nil, apperrors.ErrInvalidInput
	}
	seen := make(map[string]bool, len(req.SeatCodes))
	for _, code := range req.SeatCodes {
		// comma is the seats separator inside the hold-group record
		if code == "" || strings.Contains(code, ",") || seen[code] {
			return nil, apperrors.ErrInvalidInput
		}
		seen[code] = true
	}

	// read-only capacity check under the event row lock; the held count is a
	// non-transactional read, so concurrent reserves for disjoint seats can
	// transiently over-commit aggregate capacity (accepted, see the per-seat
	// exclusivity below which is absolute)
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	event, err := s.eventRepository.FindByIDWithLock(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	confirmed, err := s.bookingRepository.CountConfirmedByEventTx(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	held, err := s.holdStore.GetHeldCount(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if confirmed+held+len(req.SeatCodes) > event.TotalSeats {
		return nil, apperrors.ErrCapacityExceeded
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// atomic bulk hold: either every marker is set or none are
	token := uuid.New().String()
	err = s.holdStore.PlaceHold(ctx, eventID, token, req.UserID, req.SeatCodes, s.holdTTL)
	if err != nil {
		return nil, err
	}

	return &model.ReserveResponse{
		HoldGroupID: token,
		ExpiresIn:   int(s.holdTTL.Seconds()),
	}, nil
}

func (s *ReservationServiceImpl) Confirm(ctx context.Context, eventID int, req model.ConfirmRequest) (*model.ConfirmResponse, error) {
	group, err := s.holdStore.GetHoldGroup(ctx, req.HoldGroupID)
	if err != nil {
		if err == apperrors.ErrHoldNotFound {
			return nil, apperrors.ErrHoldExpired
		}
		return nil, err
	}

	if group.UserID != req.UserID {
		return nil, apperrors.ErrNotHoldOwner
	}

	// the stored event id is authoritative
	if group.EventID != eventID {
		return nil, apperrors.ErrEventMismatch
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// any per-seat failure rolls back the whole group and leaves the hold
	// valid until it expires
	err = s.bookingService.CommitGroup(ctx, tx, group.EventID, req.UserID, group.Token, group.SeatCodes)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// bookings are durable; a failed teardown only leaves markers to expire,
	// and the expiry worker compensates the counter
	if err := s.holdStore.TearDownHold(ctx, group); err != nil {
		logger.WithComponent("service").Warn("hold teardown after confirm failed",
			zap.String("hold_group_id", group.Token), zap.Error(err))
	}

	// the booking group shares the hold group's token
	return &model.ConfirmResponse{BookingGroupID: group.Token}, nil
}

func (s *ReservationServiceImpl) Release(ctx context.Context, eventID int, req model.ReleaseRequest) (*model.ReleaseResponse, error) {
	group, err := s.holdStore.GetHoldGroup(ctx, req.HoldGroupID)
	if err != nil {
		return nil, err
	}

	if group.UserID != req.UserID {
		return nil, apperrors.ErrNotHoldOwner
	}

	if err := s.holdStore.TearDownHold(ctx, group); err != nil {
		return nil, err
	}

	return &model.ReleaseResponse{Released: true}, nil
}
