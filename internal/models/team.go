package models

import (
	"time"

	"github.com/lib/pq"
)

// UnassignedTeamID marks a service day no team could be resolved for.
// Real team IDs are always positive.
const UnassignedTeamID int64 = 0

// Team is one worship team in the rotation. Position determines rotation
// order; ID is the stable reference used by overrides and swap requests.
type Team struct {
	ID        int64          `db:"id" json:"id"`
	Leader    string         `db:"leader" json:"leader"`
	Members   pq.StringArray `db:"members" json:"members"`
	Position  int            `db:"position" json:"position"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// TeamFilter narrows team listings.
type TeamFilter struct {
	Search string
}
