package model

import "time"

type Event struct {
	ID         int       `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Date       time.Time `json:"date" db:"date"`
	Location   string    `json:"location" db:"location"`
	TotalSeats int       `json:"total_seats" db:"total_seats"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CreateEventRequest provisions the event and all of its seats in one shot.
// Total capacity is the number of seat codes and is immutable afterwards.
type CreateEventRequest struct {
	Name      string    `json:"name" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	SeatCodes []string  `json:"seat_codes" binding:"required,min=1,dive,required"`
}

// AvailabilityResponse combines the durable confirmed count with the
// ephemeral held count.
type AvailabilityResponse struct {
	EventID        int `json:"event_id"`
	TotalSeats     int `json:"total_seats"`
	ConfirmedSeats int `json:"confirmed_seats"`
	HeldSeats      int `json:"held_seats"`
	AvailableSeats int `json:"available_seats"`
}
