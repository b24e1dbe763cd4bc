package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	"github.com/caleb-rm/worship-rota-api/internal/rota"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
	"github.com/caleb-rm/worship-rota-api/pkg/export"
)

const scheduleSnapshotKey = "rota:schedule"

type scheduleTeamLister interface {
	List(ctx context.Context) ([]models.Team, error)
}

type scheduleOverrideReader interface {
	Map(ctx context.Context) (map[string]int64, error)
}

type scheduleSwapLister interface {
	List(ctx context.Context) ([]models.SwapRequest, error)
}

type snapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ScheduleServiceConfig tunes schedule generation.
type ScheduleServiceConfig struct {
	DwellWeeks   int
	SpecialDates []rota.SpecialDate
	SnapshotTTL  time.Duration
}

// ScheduleResult is a materialized schedule plus whether it was served from
// the last-good snapshot instead of live data.
type ScheduleResult struct {
	Days  []dto.ScheduleDay
	Stale bool
}

// ScheduleService materializes the Sunday rota from persisted teams,
// overrides and swap requests. When the database is unreachable it falls
// back to the last snapshot written to Redis.
type ScheduleService struct {
	teams     scheduleTeamLister
	overrides scheduleOverrideReader
	swaps     scheduleSwapLister
	store     snapshotStore
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
	config    ScheduleServiceConfig
	now       func() time.Time
}

// NewScheduleService constructs a ScheduleService. The snapshot store may be
// nil, which disables the fallback path.
func NewScheduleService(teams scheduleTeamLister, overrides scheduleOverrideReader, swaps scheduleSwapLister, store snapshotStore, logger *zap.Logger, cfg ScheduleServiceConfig) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		teams:     teams,
		overrides: overrides,
		swaps:     swaps,
		store:     store,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
		config:    cfg,
		now:       time.Now,
	}
}

// Build materializes the schedule from live data, refreshing the snapshot on
// success. On a data-source failure it serves the last snapshot, marked
// stale.
func (s *ScheduleService) Build(ctx context.Context) (*ScheduleResult, error) {
	inputs, err := s.loadInputs(ctx)
	if err != nil {
		s.logger.Warn("schedule inputs unavailable, trying snapshot", zap.Error(err))
		if days, ok := s.loadSnapshot(ctx); ok {
			return &ScheduleResult{Days: days, Stale: true}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule data")
	}

	for _, swap := range inputs.Swaps {
		if !swap.Eligible() {
			s.logger.Warn("skipping malformed swap request",
				zap.Int64("id", swap.ID),
				zap.String("status", string(swap.Status)))
		}
	}

	resolved, err := rota.BuildSchedule(s.now(), *inputs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidRota.Code, appErrors.ErrInvalidRota.Status, appErrors.ErrInvalidRota.Message)
	}

	days := decorate(resolved, inputs.Teams)
	s.storeSnapshot(ctx, days)
	return &ScheduleResult{Days: days}, nil
}

// Export renders the schedule in the requested format and returns the bytes,
// content type and suggested filename.
func (s *ScheduleService) Export(ctx context.Context, format string) ([]byte, string, string, error) {
	result, err := s.Build(ctx)
	if err != nil {
		return nil, "", "", err
	}

	dataset := scheduleDataset(result.Days)
	stamp := s.now().Format("20060102")

	switch strings.ToLower(format) {
	case "csv", "":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return data, "text/csv", fmt.Sprintf("rota-%s.csv", stamp), nil
	case "pdf":
		data, err := s.pdf.Render(dataset, "Sunday Rota")
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return data, "application/pdf", fmt.Sprintf("rota-%s.pdf", stamp), nil
	default:
		return nil, "", "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// Invalidate drops the cached snapshot. Mutating services call this so the
// next read rebuilds from live data.
func (s *ScheduleService) Invalidate(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Delete(ctx, scheduleSnapshotKey); err != nil {
		s.logger.Warn("failed to invalidate schedule snapshot", zap.Error(err))
	}
}

func (s *ScheduleService) loadInputs(ctx context.Context) (*rota.Inputs, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	overrides, err := s.overrides.Map(ctx)
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}
	swaps, err := s.swaps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load swaps: %w", err)
	}
	return &rota.Inputs{
		Teams:        teams,
		Overrides:    overrides,
		Swaps:        swaps,
		DwellWeeks:   s.config.DwellWeeks,
		SpecialDates: s.config.SpecialDates,
	}, nil
}

func (s *ScheduleService) loadSnapshot(ctx context.Context) ([]dto.ScheduleDay, bool) {
	if s.store == nil {
		return nil, false
	}
	raw, err := s.store.Get(ctx, scheduleSnapshotKey)
	if err != nil {
		return nil, false
	}
	var days []dto.ScheduleDay
	if err := json.Unmarshal(raw, &days); err != nil {
		s.logger.Warn("discarding corrupt schedule snapshot", zap.Error(err))
		return nil, false
	}
	return days, true
}

func (s *ScheduleService) storeSnapshot(ctx context.Context, days []dto.ScheduleDay) {
	if s.store == nil {
		return
	}
	raw, err := json.Marshal(days)
	if err != nil {
		s.logger.Warn("failed to encode schedule snapshot", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, scheduleSnapshotKey, raw, s.config.SnapshotTTL); err != nil {
		s.logger.Warn("failed to write schedule snapshot", zap.Error(err))
	}
}

// decorate joins resolved assignments with the team roster so clients can
// render the calendar without a second lookup.
func decorate(resolved []models.ServiceDay, teams []models.Team) []dto.ScheduleDay {
	byID := make(map[int64]models.Team, len(teams))
	for _, team := range teams {
		byID[team.ID] = team
	}

	days := make([]dto.ScheduleDay, 0, len(resolved))
	for _, day := range resolved {
		entry := dto.ScheduleDay{
			Date:         day.Date,
			TeamID:       day.TeamID,
			Leader:       "Unassigned",
			IsChristmas:  day.IsChristmas,
			IsEaster:     day.IsEaster,
			IsGoodFriday: day.IsGoodFriday,
		}
		if team, ok := byID[day.TeamID]; ok {
			entry.Leader = team.Leader
			entry.Members = []string(team.Members)
		} else if day.TeamID != models.UnassignedTeamID {
			// Override or swap referencing a team that no longer exists.
			// The stored ID is authoritative; surface it as-is.
			entry.Leader = fmt.Sprintf("Team %d", day.TeamID)
		}
		days = append(days, entry)
	}
	return days
}

func scheduleDataset(days []dto.ScheduleDay) export.Dataset {
	rows := make([]map[string]string, 0, len(days))
	for _, day := range days {
		rows = append(rows, map[string]string{
			"Date":     day.Date,
			"Team":     day.Leader,
			"Occasion": occasionLabel(day),
		})
	}
	return export.Dataset{Headers: []string{"Date", "Team", "Occasion"}, Rows: rows}
}

func occasionLabel(day dto.ScheduleDay) string {
	switch {
	case day.IsChristmas:
		return "Christmas"
	case day.IsGoodFriday:
		return "Good Friday"
	case day.IsEaster:
		return "Easter"
	default:
		return ""
	}
}
