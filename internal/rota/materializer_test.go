package rota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caleb-rm/worship-rota-api/internal/models"
)

// 2025-09-07 is a Sunday.
var sundayMorning = time.Date(2025, 9, 7, 10, 30, 0, 0, time.UTC)

func baseInputs() Inputs {
	return Inputs{
		Teams:      twoTeams(),
		DwellWeeks: 2,
	}
}

func TestBuildScheduleStartsTodayWhenTodayIsSunday(t *testing.T) {
	days, err := BuildSchedule(sundayMorning, baseInputs())
	require.NoError(t, err)
	require.NotEmpty(t, days)
	assert.Equal(t, "2025-09-07", days[0].Date)
}

func TestBuildScheduleStartsNextSundayOtherwise(t *testing.T) {
	monday := time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC)
	days, err := BuildSchedule(monday, baseInputs())
	require.NoError(t, err)
	require.NotEmpty(t, days)
	assert.Equal(t, "2025-09-14", days[0].Date)
}

func TestBuildScheduleRotationPattern(t *testing.T) {
	days, err := BuildSchedule(sundayMorning, baseInputs())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(days), 4)

	assert.Equal(t, int64(1), days[0].TeamID)
	assert.Equal(t, int64(1), days[1].TeamID)
	assert.Equal(t, int64(2), days[2].TeamID)
	assert.Equal(t, int64(2), days[3].TeamID)
}

func TestBuildScheduleHorizonCoversNextCalendarYear(t *testing.T) {
	days, err := BuildSchedule(sundayMorning, baseInputs())
	require.NoError(t, err)

	last := days[len(days)-1]
	assert.Equal(t, "2026-12-27", last.Date) // last Sunday of 2026

	for _, d := range days {
		parsed, err := time.Parse(ISODate, d.Date)
		require.NoError(t, err)
		assert.LessOrEqual(t, parsed.Year(), 2026)
	}
}

func TestBuildScheduleDeterministic(t *testing.T) {
	in := baseInputs()
	in.Overrides = map[string]int64{"2025-09-21": 1}
	in.Swaps = []models.SwapRequest{
		{ID: 10, FromTeamID: 1, ToTeamID: 2, FromDate: "2025-09-07", ToDate: "2025-10-05", Status: models.SwapApproved},
	}
	in.SpecialDates = []SpecialDate{{Year: 2025, Month: 12, Day: 25, Kind: models.OccasionChristmas}}

	first, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)
	second, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildScheduleOverridePrecedence(t *testing.T) {
	in := baseInputs()
	in.Overrides = map[string]int64{"2025-09-21": 1} // index 2 would rotate to team 2

	days, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), days[2].TeamID)
	// Neighbours keep their rotation defaults.
	assert.Equal(t, int64(1), days[1].TeamID)
	assert.Equal(t, int64(2), days[3].TeamID)
}

func TestBuildScheduleApprovedSwapExchangesDates(t *testing.T) {
	in := baseInputs()
	in.Swaps = []models.SwapRequest{
		{ID: 10, FromTeamID: 1, ToTeamID: 2, FromDate: "2025-09-07", ToDate: "2025-09-21", Status: models.SwapApproved},
	}

	days, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)

	assert.Equal(t, int64(2), days[0].TeamID)
	assert.Equal(t, int64(1), days[1].TeamID)
	assert.Equal(t, int64(1), days[2].TeamID)
	assert.Equal(t, int64(2), days[3].TeamID)
}

func TestBuildScheduleInsertsWeekdaySpecialDate(t *testing.T) {
	in := baseInputs()
	// Christmas 2025 is a Thursday, not in the Sunday sequence.
	in.SpecialDates = []SpecialDate{{Year: 2025, Month: 12, Day: 25, Kind: models.OccasionChristmas}}

	days, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)

	var matches []models.ServiceDay
	for _, d := range days {
		if d.Date == "2025-12-25" {
			matches = append(matches, d)
		}
	}
	require.Len(t, matches, 1)
	assert.True(t, matches[0].IsChristmas)
	assert.NotEqual(t, models.UnassignedTeamID, matches[0].TeamID)
}

func TestBuildScheduleMergesSpecialDateOntoExistingSunday(t *testing.T) {
	in := baseInputs()
	// Easter 2026 falls on a Sunday already in the sequence.
	in.SpecialDates = []SpecialDate{{Year: 2026, Month: 4, Day: 5, Kind: models.OccasionEaster}}

	days, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)

	count := 0
	for _, d := range days {
		if d.Date == "2026-04-05" {
			count++
			assert.True(t, d.IsEaster)
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildScheduleSpecialDateHonorsOverride(t *testing.T) {
	in := baseInputs()
	in.SpecialDates = []SpecialDate{{Year: 2025, Month: 12, Day: 25, Kind: models.OccasionChristmas}}
	in.Overrides = map[string]int64{"2025-12-25": 2}

	days, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)

	for _, d := range days {
		if d.Date == "2025-12-25" {
			assert.Equal(t, int64(2), d.TeamID)
			assert.True(t, d.IsChristmas)
			return
		}
	}
	t.Fatal("special date missing from schedule")
}

func TestBuildScheduleSkipsPastSpecialDates(t *testing.T) {
	in := baseInputs()
	in.SpecialDates = []SpecialDate{{Year: 2025, Month: 4, Day: 20, Kind: models.OccasionEaster}}

	days, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)

	for _, d := range days {
		assert.NotEqual(t, "2025-04-20", d.Date)
	}
}

func TestBuildScheduleSortedAndUnique(t *testing.T) {
	in := baseInputs()
	in.SpecialDates = []SpecialDate{
		{Year: 2025, Month: 12, Day: 25, Kind: models.OccasionChristmas},
		{Year: 2026, Month: 4, Day: 3, Kind: models.OccasionGoodFriday},
		{Year: 2026, Month: 4, Day: 5, Kind: models.OccasionEaster},
	}

	days, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)

	seen := make(map[string]bool, len(days))
	for i, d := range days {
		assert.False(t, seen[d.Date], "duplicate date %s", d.Date)
		seen[d.Date] = true
		if i > 0 {
			assert.Less(t, days[i-1].Date, d.Date)
		}
	}
}

func TestBuildScheduleEmptyTeamsStillCoversHorizon(t *testing.T) {
	in := Inputs{DwellWeeks: 2}

	days, err := BuildSchedule(sundayMorning, in)
	require.NoError(t, err)
	require.NotEmpty(t, days)

	for _, d := range days {
		assert.Equal(t, models.UnassignedTeamID, d.TeamID)
	}
	assert.Equal(t, "2025-09-07", days[0].Date)
	assert.Equal(t, "2026-12-27", days[len(days)-1].Date)
}

func TestBuildScheduleRejectsInvalidConfig(t *testing.T) {
	in := baseInputs()
	in.DwellWeeks = 0
	_, err := BuildSchedule(sundayMorning, in)
	require.Error(t, err)

	in = baseInputs()
	in.HorizonYear = 2024
	_, err = BuildSchedule(sundayMorning, in)
	require.Error(t, err)
}
