package dto

// ScheduleDay is one resolved service day as served to clients: the pure
// assignment decorated with the team roster so the calendar can render
// without a second lookup. Leader is "Unassigned" when no team resolved.
type ScheduleDay struct {
	Date         string   `json:"date"`
	TeamID       int64    `json:"team_id"`
	Leader       string   `json:"leader"`
	Members      []string `json:"members,omitempty"`
	IsChristmas  bool     `json:"is_christmas,omitempty"`
	IsEaster     bool     `json:"is_easter,omitempty"`
	IsGoodFriday bool     `json:"is_good_friday,omitempty"`
}
