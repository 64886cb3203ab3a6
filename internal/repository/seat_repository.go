package repository

import (
	"context"

	"go-seat-reservation/internal/model"
	apperrors "go-seat-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatRepository interface {
	ListByEventID(ctx context.Context, eventID int) ([]*model.Seat, error)

	// Transaction methods
	CreateBatch(ctx context.Context, tx pgx.Tx, eventID int, seatCodes []string) error
	FindByCode(ctx context.Context, tx pgx.Tx, eventID int, seatCode string) (*model.Seat, error)
}

type SeatRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSeatRepository(pool *pgxpool.Pool) SeatRepository {
	return &SeatRepositoryImpl{
		pool: pool,
	}
}

// CreateBatch provisions all seats of an event in one round trip.
func (r *SeatRepositoryImpl) CreateBatch(ctx context.Context, tx pgx.Tx, eventID int, seatCodes []string) error {
	query := `
		INSERT INTO seats (event_id, seat_code)
		VALUES ($1, $2)
	`

	batch := &pgx.Batch{}
	for _, code := range seatCodes {
		batch.Queue(query, eventID, code)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range seatCodes {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}

func (r *SeatRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Seat, error) {
	query := `
		SELECT id, event_id, seat_code, created_at
		FROM seats
		WHERE event_id = $1
		ORDER BY seat_code
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]*model.Seat, 0)
	for rows.Next() {
		var seat model.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.EventID,
			&seat.SeatCode,
			&seat.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (r *SeatRepositoryImpl) FindByCode(ctx context.Context, tx pgx.Tx, eventID int, seatCode string) (*model.Seat, error) {
	query := `
		SELECT id, event_id, seat_code, created_at
		FROM seats
		WHERE event_id = $1 AND seat_code = $2
	`

	var seat model.Seat
	err := tx.QueryRow(ctx, query, eventID, seatCode).Scan(
		&seat.ID,
		&seat.EventID,
		&seat.SeatCode,
		&seat.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSeatNotFound
		}
		return nil, err
	}

	return &seat, nil
}
