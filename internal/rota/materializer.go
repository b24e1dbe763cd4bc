package rota

import (
	"fmt"
	"sort"
	"time"

	"github.com/caleb-rm/worship-rota-api/internal/models"
)

// SpecialDate is a fixed calendar date (holiday) that must appear in the
// output even when it does not fall on a Sunday.
type SpecialDate struct {
	Year  int
	Month int
	Day   int
	Kind  string
}

// Inputs is a complete snapshot of scheduling state. BuildSchedule never
// mutates it.
type Inputs struct {
	Teams        []models.Team
	Overrides    map[string]int64
	Swaps        []models.SwapRequest
	DwellWeeks   int
	HorizonYear  int // inclusive; 0 means "end of next calendar year"
	SpecialDates []SpecialDate
}

// BuildSchedule walks every Sunday from the next occurrence at or after now
// (inclusive of today) through the end of the horizon year, resolves each
// date through the precedence rules, folds in special dates without
// duplicating, and returns the result sorted ascending by date. Given the
// same snapshot the output is identical on every call.
func BuildSchedule(now time.Time, in Inputs) ([]models.ServiceDay, error) {
	if in.DwellWeeks <= 0 {
		return nil, fmt.Errorf("dwell weeks must be positive, got %d", in.DwellWeeks)
	}
	horizon := in.HorizonYear
	if horizon == 0 {
		horizon = now.Year() + 1
	}
	if horizon < now.Year() {
		return nil, fmt.Errorf("horizon year %d precedes current year %d", horizon, now.Year())
	}

	// Local wall-clock date, time-of-day stripped. Using UTC here would shift
	// "today" across the day boundary for western timezones.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	first := today.AddDate(0, 0, (7-int(today.Weekday()))%7)

	swaps := OrderSwaps(in.Swaps)
	query := func(date string, index int) Query {
		return Query{
			Date:       date,
			Index:      index,
			Teams:      in.Teams,
			DwellWeeks: in.DwellWeeks,
			Overrides:  in.Overrides,
			Swaps:      swaps,
		}
	}

	days := make([]models.ServiceDay, 0, 128)
	byDate := make(map[string]int)

	for d, index := first, 0; d.Year() <= horizon; d, index = d.AddDate(0, 0, 7), index+1 {
		iso := d.Format(ISODate)
		byDate[iso] = len(days)
		days = append(days, models.ServiceDay{
			Date:   iso,
			TeamID: EffectiveTeamID(query(iso, index)),
		})
	}

	for _, sp := range in.SpecialDates {
		d := time.Date(sp.Year, time.Month(sp.Month), sp.Day, 0, 0, 0, 0, now.Location())
		if d.Before(today) || d.Year() > horizon {
			continue
		}
		iso := d.Format(ISODate)
		if i, ok := byDate[iso]; ok {
			// Already a generated Sunday: merge the flag, keep the resolved
			// team (overrides were already consulted for this date).
			applyOccasion(&days[i], sp.Kind)
			continue
		}
		day := models.ServiceDay{
			Date:   iso,
			TeamID: EffectiveTeamID(query(iso, weekIndexOf(first, d))),
		}
		applyOccasion(&day, sp.Kind)
		byDate[iso] = len(days)
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// weekIndexOf places an arbitrary date on the weekly rotation axis anchored
// at the first generated Sunday. Dates before the anchor (e.g. a holiday
// between today and the coming Sunday) take the current slot.
func weekIndexOf(first, d time.Time) int {
	if d.Before(first) {
		return 0
	}
	// Rounding absorbs the +-1h jitter midnight-to-midnight subtraction picks
	// up across DST transitions.
	daysApart := int(d.Sub(first).Hours()/24 + 0.5)
	return daysApart / 7
}

func applyOccasion(day *models.ServiceDay, kind string) {
	switch kind {
	case models.OccasionChristmas:
		day.IsChristmas = true
	case models.OccasionEaster:
		day.IsEaster = true
	case models.OccasionGoodFriday:
		day.IsGoodFriday = true
	}
}
