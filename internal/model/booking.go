package model

import "time"

// BookingStatus state of a durable booking row
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsValid reports whether the status is a known value
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks a status transition; cancellation is terminal.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	return s == BookingStatusConfirmed && target == BookingStatusCancelled
}

// Booking binds one seat to one user for one booking group. A seat may
// accumulate cancelled rows over time but carries at most one CONFIRMED row
// at any instant.
type Booking struct {
	ID             int           `json:"id" db:"id"`
	EventID        int           `json:"event_id" db:"event_id"`
	SeatID         int           `json:"seat_id" db:"seat_id"`
	UserID         string        `json:"user_id" db:"user_id"`
	BookingGroupID string        `json:"booking_group_id" db:"booking_group_id"`
	HoldID         string        `json:"hold_id" db:"hold_id"`
	Status         BookingStatus `json:"status" db:"status"`
	ConfirmedAt    *time.Time    `json:"confirmed_at,omitempty" db:"confirmed_at"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
}

// BookingGroupItem is one seat of a booking group, joined with its seat code
// and event name for the lookup surface.
type BookingGroupItem struct {
	BookingID   int           `json:"booking_id"`
	EventID     int           `json:"event_id"`
	EventName   string        `json:"event_name"`
	SeatCode    string        `json:"seat_code"`
	UserID      string        `json:"user_id"`
	Status      BookingStatus `json:"status"`
	ConfirmedAt *time.Time    `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
}

// CancelResponse result of a booking-group cancellation
type CancelResponse struct {
	BookingGroupID string `json:"booking_group_id"`
	Cancelled      bool   `json:"cancelled"`
}
