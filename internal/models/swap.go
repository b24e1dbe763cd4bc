package models

import "time"

// SwapStatus is the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapPending  SwapStatus = "pending"
	SwapApproved SwapStatus = "approved"
	SwapRejected SwapStatus = "rejected"
)

// Valid reports whether the status is a known value.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapPending, SwapApproved, SwapRejected:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s SwapStatus) Terminal() bool {
	return s == SwapApproved || s == SwapRejected
}

// SwapRequest records an intent to exchange the assignments of two dates
// between two teams. Only approved requests affect the schedule. IDs are
// creation-time based (Unix milliseconds), so ascending ID order is
// creation order.
type SwapRequest struct {
	ID         int64      `db:"id" json:"id"`
	FromTeamID int64      `db:"from_team_id" json:"from_team_id"`
	ToTeamID   int64      `db:"to_team_id" json:"to_team_id"`
	FromDate   string     `db:"from_date" json:"from_date"`
	ToDate     string     `db:"to_date" json:"to_date"`
	Status     SwapStatus `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Eligible reports whether the record is complete enough to be considered
// during resolution. Partially-formed rows are skipped, never fatal.
func (r SwapRequest) Eligible() bool {
	return r.FromDate != "" && r.ToDate != "" && r.Status.Valid()
}
