package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, BookingStatusConfirmed.IsValid())
	assert.True(t, BookingStatusCancelled.IsValid())
	assert.False(t, BookingStatus("PENDING").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusConfirmed))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusConfirmed))
}

func TestHoldGroup_Size(t *testing.T) {
	group := &HoldGroup{SeatCodes: []string{"A1", "A2", "A3"}}
	assert.Equal(t, 3, group.Size())

	empty := &HoldGroup{}
	assert.Equal(t, 0, empty.Size())
}
