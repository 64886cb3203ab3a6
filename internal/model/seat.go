package model

import "time"

// Seat codes are unique within their event. Seats are provisioned once at
// event creation and never deleted while the event exists.
type Seat struct {
	ID        int       `json:"id" db:"id"`
	EventID   int       `json:"event_id" db:"event_id"`
	SeatCode  string    `json:"seat_code" db:"seat_code"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
