package model

// HoldGroup is the ephemeral record behind a hold token: who holds which
// seats of which event. It lives in the ephemeral store only and
// self-destructs on TTL expiry.
type HoldGroup struct {
	Token     string   `json:"token"`
	EventID   int      `json:"event_id"`
	UserID    string   `json:"user_id"`
	SeatCodes []string `json:"seat_codes"`
}

// Size number of seats held by the group
func (g *HoldGroup) Size() int {
	return len(g.SeatCodes)
}

// ReserveRequest asks for a time-bounded hold on a set of seats.
type ReserveRequest struct {
	UserID    string   `json:"user_id" binding:"required"`
	SeatCodes []string `json:"seat_codes" binding:"required,min=1,dive,required"`
}

type ReserveResponse struct {
	HoldGroupID string `json:"hold_group_id"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

type ConfirmRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	HoldGroupID string `json:"hold_group_id" binding:"required"`
}

type ConfirmResponse struct {
	BookingGroupID string `json:"booking_group_id"`
}

type ReleaseRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	HoldGroupID string `json:"hold_group_id" binding:"required"`
}

type ReleaseResponse struct {
	Released bool `json:"released"`
}
