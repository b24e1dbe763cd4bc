package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
)

type swapRepository interface {
	List(ctx context.Context) ([]models.SwapRequest, error)
	FindByID(ctx context.Context, id int64) (*models.SwapRequest, error)
	Create(ctx context.Context, swap *models.SwapRequest) error
	UpdateStatusFromPending(ctx context.Context, id int64, status models.SwapStatus) (bool, error)
}

// SwapService manages the swap-request lifecycle: created pending, then
// finalized exactly once as approved or rejected.
type SwapService struct {
	repo      swapRepository
	schedule  scheduleInvalidator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewSwapService constructs a SwapService.
func NewSwapService(repo swapRepository, schedule scheduleInvalidator, validate *validator.Validate, logger *zap.Logger) *SwapService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwapService{repo: repo, schedule: schedule, validator: validate, logger: logger, now: time.Now}
}

// List returns all swap requests in creation order.
func (s *SwapService) List(ctx context.Context) ([]models.SwapRequest, error) {
	swaps, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list swap requests")
	}
	return swaps, nil
}

// Create records a new pending swap request. The ID is the creation
// timestamp in Unix milliseconds, so ascending IDs preserve creation order.
func (s *SwapService) Create(ctx context.Context, req dto.CreateSwapRequest) (*models.SwapRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid swap payload")
	}

	fromDate, err := canonicalDate(req.FromDate)
	if err != nil {
		return nil, err
	}
	toDate, err := canonicalDate(req.ToDate)
	if err != nil {
		return nil, err
	}
	if fromDate == toDate {
		return nil, appErrors.Clone(appErrors.ErrValidation, "swap dates must differ")
	}

	swap := &models.SwapRequest{
		ID:         s.now().UnixMilli(),
		FromTeamID: req.FromTeamID,
		ToTeamID:   req.ToTeamID,
		FromDate:   fromDate,
		ToDate:     toDate,
		Status:     models.SwapPending,
	}
	if err := s.repo.Create(ctx, swap); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create swap request")
	}

	s.logger.Info("swap request created",
		zap.Int64("id", swap.ID),
		zap.String("from_date", swap.FromDate),
		zap.String("to_date", swap.ToDate))
	return swap, nil
}

// Decide finalizes a pending swap request. Approved and rejected are
// terminal; attempting to change a finalized request fails with a conflict.
func (s *SwapService) Decide(ctx context.Context, id int64, req dto.SwapDecisionRequest) (*models.SwapRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status must be approved or rejected")
	}

	status := models.SwapStatus(req.Status)
	changed, err := s.repo.UpdateStatusFromPending(ctx, id, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update swap request")
	}
	if !changed {
		// Either the row is missing or it already left pending.
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "swap request not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch swap request")
		}
		return existing, appErrors.ErrSwapFinalized
	}

	swap, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch swap request")
	}

	s.schedule.Invalidate(ctx)
	s.logger.Info("swap request finalized", zap.Int64("id", id), zap.String("status", req.Status))
	return swap, nil
}
