package dto

// TeamRequest is the payload for creating or updating a team.
type TeamRequest struct {
	Leader  string   `json:"leader" validate:"required"`
	Members []string `json:"members" validate:"required,min=1,dive,required"`
}
