package repository

import (
	"context"
	"fmt"
	"time"

	"go-seat-reservation/internal/model"
	apperrors "go-seat-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	ListGroup(ctx context.Context, bookingGroupID string) ([]*model.BookingGroupItem, error)
	CountConfirmedByEvent(ctx context.Context, eventID int) (int, error)
	CancelGroup(ctx context.Context, bookingGroupID string) (int64, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error)
	FindConfirmedBySeatWithLock(ctx context.Context, tx pgx.Tx, seatID int) (*model.Booking, error)
	CountConfirmedByEventTx(ctx context.Context, tx pgx.Tx, eventID int) (int, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (
			event_id, seat_id, user_id, booking_group_id, hold_id, status, confirmed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, event_id, seat_id, user_id, booking_group_id, hold_id,
			status, confirmed_at, cancelled_at, created_at
	`

	err := tx.QueryRow(ctx, query,
		booking.EventID, booking.SeatID, booking.UserID,
		booking.BookingGroupID, booking.HoldID, booking.Status, booking.ConfirmedAt,
	).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.SeatID,
		&booking.UserID,
		&booking.BookingGroupID,
		&booking.HoldID,
		&booking.Status,
		&booking.ConfirmedAt,
		&booking.CancelledAt,
		&booking.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

// FindConfirmedBySeatWithLock locks the seat's CONFIRMED booking row if one
// exists. This row lock is what serializes concurrent confirmations for the
// same seat. Returns (nil, nil) when the seat has no confirmed booking.
func (r *BookingRepositoryImpl) FindConfirmedBySeatWithLock(ctx context.Context, tx pgx.Tx, seatID int) (*model.Booking, error) {
	query := `
		SELECT id, event_id, seat_id, user_id, booking_group_id, hold_id,
			status, confirmed_at, cancelled_at, created_at
		FROM bookings
		WHERE seat_id = $1 AND status = $2
		FOR UPDATE
	`

	var booking model.Booking
	err := tx.QueryRow(ctx, query, seatID, model.BookingStatusConfirmed).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.SeatID,
		&booking.UserID,
		&booking.BookingGroupID,
		&booking.HoldID,
		&booking.Status,
		&booking.ConfirmedAt,
		&booking.CancelledAt,
		&booking.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// CancelGroup soft-cancels every confirmed row of a booking group in one
// statement and reports how many rows it touched. Rows are never deleted.
func (r *BookingRepositoryImpl) CancelGroup(ctx context.Context, bookingGroupID string) (int64, error) {
	query := `
		UPDATE bookings
		SET status = $1, cancelled_at = $2
		WHERE booking_group_id = $3 AND status = $4
	`

	result, err := r.pool.Exec(ctx, query,
		model.BookingStatusCancelled, time.Now().UTC(),
		bookingGroupID, model.BookingStatusConfirmed,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *BookingRepositoryImpl) CountConfirmedByEvent(ctx context.Context, eventID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE event_id = $1 AND status = $2
	`

	var count int
	err := r.pool.QueryRow(ctx, query, eventID, model.BookingStatusConfirmed).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingRepositoryImpl) CountConfirmedByEventTx(ctx context.Context, tx pgx.Tx, eventID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE event_id = $1 AND status = $2
	`

	var count int
	err := tx.QueryRow(ctx, query, eventID, model.BookingStatusConfirmed).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingRepositoryImpl) ListGroup(ctx context.Context, bookingGroupID string) ([]*model.BookingGroupItem, error) {
	query := `
		SELECT b.id, b.event_id, e.name, s.seat_code, b.user_id,
			b.status, b.confirmed_at, b.cancelled_at
		FROM bookings b
		JOIN seats s ON s.id = b.seat_id
		JOIN events e ON e.id = b.event_id
		WHERE b.booking_group_id = $1
		ORDER BY s.seat_code
	`

	rows, err := r.pool.Query(ctx, query, bookingGroupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.BookingGroupItem, 0)
	for rows.Next() {
		var item model.BookingGroupItem
		err := rows.Scan(
			&item.BookingID,
			&item.EventID,
			&item.EventName,
			&item.SeatCode,
			&item.UserID,
			&item.Status,
			&item.ConfirmedAt,
			&item.CancelledAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, apperrors.ErrBookingNotFound
	}

	return items, nil
}
