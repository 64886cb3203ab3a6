package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrSeatNotFound        = errors.New("seat not found")
	ErrHoldNotFound        = errors.New("hold not found")
	ErrHoldExpired         = errors.New("hold expired")
	ErrNotHoldOwner        = errors.New("not hold owner")
	ErrEventMismatch       = errors.New("event mismatch")
	ErrCapacityExceeded    = errors.New("capacity exceeded")
	ErrSeatAlreadyHeld     = errors.New("seat already held")
	ErrSeatAlreadyBooked   = errors.New("seat already booked")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidBooking      = errors.New("invalid booking")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
