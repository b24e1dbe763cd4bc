package models

import "time"

// ManualOverride forces a team onto a calendar date, bypassing rotation and
// swap logic entirely. Dates are canonical YYYY-MM-DD strings, one entry per
// date.
type ManualOverride struct {
	Date      string    `db:"date" json:"date"`
	TeamID    int64     `db:"team_id" json:"team_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
