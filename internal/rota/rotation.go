package rota

import (
	"github.com/caleb-rm/worship-rota-api/internal/models"
)

// ISODate is the canonical date layout used throughout the rota. Lexicographic
// order on these strings matches chronological order.
const ISODate = "2006-01-02"

// DefaultTeamID computes the rotation default for the index-th Sunday counted
// from the first generated date: each team serves dwellWeeks consecutive
// Sundays in team-position order. The function is pure; two calls with the
// same inputs always agree, which is what lets the materializer rebuild the
// whole calendar from scratch on every change.
func DefaultTeamID(index int, teams []models.Team, dwellWeeks int) int64 {
	if len(teams) == 0 || dwellWeeks <= 0 || index < 0 {
		return models.UnassignedTeamID
	}
	position := (index / dwellWeeks) % len(teams)
	return teams[position].ID
}
