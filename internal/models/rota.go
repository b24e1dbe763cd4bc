package models

// Occasion kinds attached to special dates.
const (
	OccasionChristmas  = "christmas"
	OccasionEaster     = "easter"
	OccasionGoodFriday = "goodfriday"
)

// ServiceDay is one materialized, resolved assignment in the rota. TeamID is
// UnassignedTeamID when no team could be resolved (e.g. empty team list).
type ServiceDay struct {
	Date         string `json:"date"`
	TeamID       int64  `json:"team_id"`
	IsChristmas  bool   `json:"is_christmas,omitempty"`
	IsEaster     bool   `json:"is_easter,omitempty"`
	IsGoodFriday bool   `json:"is_good_friday,omitempty"`
}

// HasOccasion reports whether any special-occasion flag is set.
func (d ServiceDay) HasOccasion() bool {
	return d.IsChristmas || d.IsEaster || d.IsGoodFriday
}
