package service

import (
	"context"
	"strings"

	"go-seat-reservation/internal/cache"
	"go-seat-reservation/internal/model"
	"go-seat-reservation/internal/repository"
	apperrors "go-seat-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventService interface {
	// Create provisions the event and all of its seats in one transaction.
	Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	GetByID(ctx context.Context, id int) (*model.Event, error)
	ListSeats(ctx context.Context, eventID int) ([]*model.Seat, error)
	// GetAvailability combines the durable confirmed count with the
	// ephemeral held count.
	GetAvailability(ctx context.Context, eventID int) (*model.AvailabilityResponse, error)
}

type EventServiceImpl struct {
	pool              *pgxpool.Pool
	repo              repository.EventRepository
	seatRepo          repository.SeatRepository
	bookingRepository repository.BookingRepository
	holdStore         cache.HoldStore
}

func NewEventService(
	pool *pgxpool.Pool,
	repo repository.EventRepository,
	seatRepo repository.SeatRepository,
	bookingRepository repository.BookingRepository,
	holdStore cache.HoldStore,
) EventService {
	return &EventServiceImpl{
		pool:              pool,
		repo:              repo,
		seatRepo:          seatRepo,
		bookingRepository: bookingRepository,
		holdStore:         holdStore,
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	seen := make(map[string]bool, len(req.SeatCodes))
	for _, code := range req.SeatCodes {
		// comma is the seats separator inside the hold-group record
		if code == "" || strings.Contains(code, ",") || seen[code] {
			return nil, apperrors.ErrInvalidInput
		}
		seen[code] = true
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	event := &model.Event{
		Name:       req.Name,
		Date:       req.Date,
		Location:   req.Location,
		TotalSeats: len(req.SeatCodes),
	}

	created, err := s.repo.Create(ctx, tx, event)
	if err != nil {
		return nil, err
	}

	if err := s.seatRepo.CreateBatch(ctx, tx, created.ID, req.SeatCodes); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id int) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) ListSeats(ctx context.Context, eventID int) ([]*model.Seat, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.seatRepo.ListByEventID(ctx, eventID)
}

func (s *EventServiceImpl) GetAvailability(ctx context.Context, eventID int) (*model.AvailabilityResponse, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	confirmed, err := s.bookingRepository.CountConfirmedByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	held, err := s.holdStore.GetHeldCount(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &model.AvailabilityResponse{
		EventID:        event.ID,
		TotalSeats:     event.TotalSeats,
		ConfirmedSeats: confirmed,
		HeldSeats:      held,
		AvailableSeats: event.TotalSeats - confirmed - held,
	}, nil
}
