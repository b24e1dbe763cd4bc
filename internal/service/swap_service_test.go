package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
)

type swapRepoStub struct {
	swaps map[int64]models.SwapRequest
	err   error
}

func newSwapRepoStub() *swapRepoStub {
	return &swapRepoStub{swaps: make(map[int64]models.SwapRequest)}
}

func (s *swapRepoStub) List(ctx context.Context) ([]models.SwapRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := make([]models.SwapRequest, 0, len(s.swaps))
	for _, swap := range s.swaps {
		result = append(result, swap)
	}
	return result, nil
}

func (s *swapRepoStub) FindByID(ctx context.Context, id int64) (*models.SwapRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	swap, ok := s.swaps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &swap, nil
}

func (s *swapRepoStub) Create(ctx context.Context, swap *models.SwapRequest) error {
	if s.err != nil {
		return s.err
	}
	s.swaps[swap.ID] = *swap
	return nil
}

func (s *swapRepoStub) UpdateStatusFromPending(ctx context.Context, id int64, status models.SwapStatus) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	swap, ok := s.swaps[id]
	if !ok || swap.Status != models.SwapPending {
		return false, nil
	}
	swap.Status = status
	s.swaps[id] = swap
	return true, nil
}

func TestSwapServiceCreatePending(t *testing.T) {
	repo := newSwapRepoStub()
	svc := NewSwapService(repo, &recordingInvalidator{}, nil, nil)
	svc.now = func() time.Time { return time.UnixMilli(1757000000000) }

	swap, err := svc.Create(context.Background(), dto.CreateSwapRequest{
		FromTeamID: 1,
		ToTeamID:   2,
		FromDate:   "2025-09-07",
		ToDate:     "2025-09-21",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1757000000000), swap.ID)
	assert.Equal(t, models.SwapPending, swap.Status)
}

func TestSwapServiceCreateRejectsSameDates(t *testing.T) {
	svc := NewSwapService(newSwapRepoStub(), &recordingInvalidator{}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateSwapRequest{
		FromTeamID: 1,
		ToTeamID:   2,
		FromDate:   "2025-09-07",
		ToDate:     "2025-09-07",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSwapServiceCreateRejectsBadDate(t *testing.T) {
	svc := NewSwapService(newSwapRepoStub(), &recordingInvalidator{}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateSwapRequest{
		FromTeamID: 1,
		ToTeamID:   2,
		FromDate:   "07/09/2025",
		ToDate:     "2025-09-21",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSwapServiceDecideApproves(t *testing.T) {
	repo := newSwapRepoStub()
	repo.swaps[100] = models.SwapRequest{ID: 100, Status: models.SwapPending, FromDate: "2025-09-07", ToDate: "2025-09-21"}
	invalidator := &recordingInvalidator{}
	svc := NewSwapService(repo, invalidator, nil, nil)

	swap, err := svc.Decide(context.Background(), 100, dto.SwapDecisionRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, models.SwapApproved, swap.Status)
	assert.Equal(t, 1, invalidator.calls)
}

func TestSwapServiceDecideTerminalConflict(t *testing.T) {
	repo := newSwapRepoStub()
	repo.swaps[100] = models.SwapRequest{ID: 100, Status: models.SwapRejected}
	svc := NewSwapService(repo, &recordingInvalidator{}, nil, nil)

	swap, err := svc.Decide(context.Background(), 100, dto.SwapDecisionRequest{Status: "approved"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSwapFinalized.Code, appErrors.FromError(err).Code)
	require.NotNil(t, swap)
	assert.Equal(t, models.SwapRejected, swap.Status)
}

func TestSwapServiceDecideNotFound(t *testing.T) {
	svc := NewSwapService(newSwapRepoStub(), &recordingInvalidator{}, nil, nil)

	_, err := svc.Decide(context.Background(), 404, dto.SwapDecisionRequest{Status: "rejected"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSwapServiceDecideRejectsInvalidStatus(t *testing.T) {
	svc := NewSwapService(newSwapRepoStub(), &recordingInvalidator{}, nil, nil)

	_, err := svc.Decide(context.Background(), 100, dto.SwapDecisionRequest{Status: "pending"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
