package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
)

type teamRepository interface {
	List(ctx context.Context) ([]models.Team, error)
	FindByID(ctx context.Context, id int64) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// scheduleInvalidator lets mutating services drop the cached schedule
// snapshot so the next read reflects the change.
type scheduleInvalidator interface {
	Invalidate(ctx context.Context)
}

// TeamService manages the worship teams in the rotation.
type TeamService struct {
	repo      teamRepository
	schedule  scheduleInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeamService constructs a TeamService.
func NewTeamService(repo teamRepository, schedule scheduleInvalidator, validate *validator.Validate, logger *zap.Logger) *TeamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamService{repo: repo, schedule: schedule, validator: validate, logger: logger}
}

// List returns teams in rotation order, optionally filtered by leader or
// member name.
func (s *TeamService) List(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teams")
	}
	if filter.Search == "" {
		return teams, nil
	}

	needle := strings.ToLower(filter.Search)
	filtered := make([]models.Team, 0, len(teams))
	for _, team := range teams {
		if teamMatches(team, needle) {
			filtered = append(filtered, team)
		}
	}
	return filtered, nil
}

// Get fetches one team.
func (s *TeamService) Get(ctx context.Context, id int64) (*models.Team, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch team")
	}
	return team, nil
}

// Create adds a team at the end of the rotation.
func (s *TeamService) Create(ctx context.Context, req dto.TeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid team payload")
	}

	team := &models.Team{Leader: req.Leader, Members: pq.StringArray(req.Members)}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create team")
	}

	s.schedule.Invalidate(ctx)
	s.logger.Info("team created", zap.Int64("id", team.ID), zap.String("leader", team.Leader))
	return team, nil
}

// Update replaces a team's leader and members.
func (s *TeamService) Update(ctx context.Context, id int64, req dto.TeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid team payload")
	}

	team, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Leader = req.Leader
	team.Members = pq.StringArray(req.Members)
	if err := s.repo.Update(ctx, team); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update team")
	}

	s.schedule.Invalidate(ctx)
	return team, nil
}

// Delete removes a team from the rotation. Overrides and swap requests that
// reference it keep their stored ID; the resolver treats unknown IDs as
// authoritative data, not an error.
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete team")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "team not found")
	}

	s.schedule.Invalidate(ctx)
	s.logger.Info("team deleted", zap.Int64("id", id))
	return nil
}

func teamMatches(team models.Team, needle string) bool {
	if strings.Contains(strings.ToLower(team.Leader), needle) {
		return true
	}
	for _, member := range team.Members {
		if strings.Contains(strings.ToLower(member), needle) {
			return true
		}
	}
	return false
}
