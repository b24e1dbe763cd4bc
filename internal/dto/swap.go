package dto

// CreateSwapRequest proposes exchanging the assignments of two dates.
type CreateSwapRequest struct {
	FromTeamID int64  `json:"from_team_id" validate:"required,gt=0"`
	ToTeamID   int64  `json:"to_team_id" validate:"required,gt=0"`
	FromDate   string `json:"from_date" validate:"required"`
	ToDate     string `json:"to_date" validate:"required"`
}

// SwapDecisionRequest finalizes a pending swap request.
type SwapDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
