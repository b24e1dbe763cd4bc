package rota

import (
	"sort"

	"github.com/caleb-rm/worship-rota-api/internal/models"
)

// Query carries everything needed to resolve the effective team for one date.
// Swaps must be in ascending ID order (creation order); OrderSwaps prepares
// them.
type Query struct {
	Date       string
	Index      int
	Teams      []models.Team
	DwellWeeks int
	Overrides  map[string]int64
	Swaps      []models.SwapRequest
}

// A rule inspects a query and either claims the date or passes.
type rule func(Query) (int64, bool)

// Resolution precedence, highest first. Keeping this an explicit ordered list
// makes the precedence contract testable apart from the date-walking loop.
var rules = []rule{
	resolveOverride,
	resolveSwap,
	resolveRotation,
}

// EffectiveTeamID applies the precedence rules for a single date:
// manual override, then approved swap, then rotation default.
func EffectiveTeamID(q Query) int64 {
	for _, r := range rules {
		if id, ok := r(q); ok {
			return id
		}
	}
	return models.UnassignedTeamID
}

// resolveOverride returns a manual override verbatim. The team ID is not
// validated against the team list; an unknown ID degrades to an "Unassigned"
// label downstream rather than failing the build.
func resolveOverride(q Query) (int64, bool) {
	id, ok := q.Overrides[q.Date]
	return id, ok
}

// resolveSwap scans approved swaps in creation order and takes the first one
// naming the date. A date that is fromDate of one swap and toDate of another
// goes to the earliest-created request.
func resolveSwap(q Query) (int64, bool) {
	for _, s := range q.Swaps {
		if !s.Eligible() || s.Status != models.SwapApproved {
			continue
		}
		if q.Date == s.FromDate {
			return s.ToTeamID, true
		}
		if q.Date == s.ToDate {
			return s.FromTeamID, true
		}
	}
	return 0, false
}

func resolveRotation(q Query) (int64, bool) {
	return DefaultTeamID(q.Index, q.Teams, q.DwellWeeks), true
}

// OrderSwaps returns a copy of swaps sorted by ascending ID with ineligible
// (partially-formed) records dropped. IDs are creation-time based, so this
// pins "first match" to "earliest created".
func OrderSwaps(swaps []models.SwapRequest) []models.SwapRequest {
	ordered := make([]models.SwapRequest, 0, len(swaps))
	for _, s := range swaps {
		if s.Eligible() {
			ordered = append(ordered, s)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	return ordered
}
