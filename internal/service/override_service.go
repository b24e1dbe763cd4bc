package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	"github.com/caleb-rm/worship-rota-api/internal/rota"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
)

type overrideRepository interface {
	List(ctx context.Context) ([]models.ManualOverride, error)
	Upsert(ctx context.Context, date string, teamID int64) error
	Delete(ctx context.Context, date string) (bool, error)
}

// OverrideService manages manual per-date team assignments.
type OverrideService struct {
	repo      overrideRepository
	schedule  scheduleInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOverrideService constructs an OverrideService.
func NewOverrideService(repo overrideRepository, schedule scheduleInvalidator, validate *validator.Validate, logger *zap.Logger) *OverrideService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverrideService{repo: repo, schedule: schedule, validator: validate, logger: logger}
}

// List returns all overrides ordered by date.
func (s *OverrideService) List(ctx context.Context) ([]models.ManualOverride, error) {
	overrides, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list overrides")
	}
	return overrides, nil
}

// Set pins a team onto a date, replacing any previous override for it.
func (s *OverrideService) Set(ctx context.Context, date string, req dto.OverrideRequest) (*models.ManualOverride, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid override payload")
	}
	canonical, err := canonicalDate(date)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, canonical, req.TeamID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save override")
	}

	s.schedule.Invalidate(ctx)
	s.logger.Info("override set", zap.String("date", canonical), zap.Int64("team_id", req.TeamID))
	return &models.ManualOverride{Date: canonical, TeamID: req.TeamID}, nil
}

// Clear removes the override for a date.
func (s *OverrideService) Clear(ctx context.Context, date string) error {
	canonical, err := canonicalDate(date)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, canonical)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete override")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "no override for that date")
	}

	s.schedule.Invalidate(ctx)
	s.logger.Info("override cleared", zap.String("date", canonical))
	return nil
}

// canonicalDate parses and re-renders a date so stored keys are always
// YYYY-MM-DD with zero padding.
func canonicalDate(date string) (string, error) {
	parsed, err := time.Parse(rota.ISODate, date)
	if err != nil {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}
	return parsed.Format(rota.ISODate), nil
}
