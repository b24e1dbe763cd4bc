package dto

// OverrideRequest pins a team onto a calendar date.
type OverrideRequest struct {
	TeamID int64 `json:"team_id" validate:"required,gt=0"`
}
