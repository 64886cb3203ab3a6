package service

import (
	"context"
	"fmt"
	"time"

	"go-seat-reservation/internal/model"
	"go-seat-reservation/internal/repository"
	apperrors "go-seat-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

type BookingService interface {
	// CommitGroup converts a hold into durable CONFIRMED rows, one per seat,
	// inside the caller's transaction. Any per-seat failure aborts the whole
	// group.
	CommitGroup(ctx context.Context, tx pgx.Tx, eventID int, userID string, holdGroupID string, seatCodes []string) error
	// Cancel soft-cancels every confirmed row of a booking group.
	Cancel(ctx context.Context, bookingGroupID string) (*model.CancelResponse, error)
	GetGroup(ctx context.Context, bookingGroupID string) ([]*model.BookingGroupItem, error)
}

type BookingServiceImpl struct {
	repository     repository.BookingRepository
	seatRepository repository.SeatRepository
}

func NewBookingService(
	bookingRepository repository.BookingRepository,
	seatRepository repository.SeatRepository,
) BookingService {
	return &BookingServiceImpl{
		repository:     bookingRepository,
		seatRepository: seatRepository,
	}
}

func (s *BookingServiceImpl) CommitGroup(ctx context.Context, tx pgx.Tx, eventID int, userID string, holdGroupID string, seatCodes []string) error {
	now := time.Now().UTC()

	for _, code := range seatCodes {
		// seat existence is validated here, not at reserve time
		seat, err := s.seatRepository.FindByCode(ctx, tx, eventID, code)
		if err != nil {
			return err
		}

		// the row lock on the existing booking serializes concurrent
		// confirmations for the same seat
		existing, err := s.repository.FindConfirmedBySeatWithLock(ctx, tx, seat.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrSeatAlreadyBooked
		}

		booking := &model.Booking{
			EventID:        eventID,
			SeatID:         seat.ID,
			UserID:         userID,
			BookingGroupID: holdGroupID,
			HoldID:         fmt.Sprintf("%s:%s", holdGroupID, code),
			Status:         model.BookingStatusConfirmed,
			ConfirmedAt:    &now,
		}

		if _, err := s.repository.Create(ctx, tx, booking); err != nil {
			return err
		}
	}

	return nil
}

func (s *BookingServiceImpl) Cancel(ctx context.Context, bookingGroupID string) (*model.CancelResponse, error) {
	affected, err := s.repository.CancelGroup(ctx, bookingGroupID)
	if err != nil {
		return nil, err
	}

	// nothing confirmed under this group id: already cancelled or never booked
	if affected == 0 {
		return nil, apperrors.ErrInvalidBooking
	}

	return &model.CancelResponse{
		BookingGroupID: bookingGroupID,
		Cancelled:      true,
	}, nil
}

func (s *BookingServiceImpl) GetGroup(ctx context.Context, bookingGroupID string) ([]*model.BookingGroupItem, error) {
	return s.repository.ListGroup(ctx, bookingGroupID)
}
