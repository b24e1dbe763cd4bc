package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/caleb-rm/worship-rota-api/internal/models"
)

// SwapRepository manages persistence for swap requests.
type SwapRepository struct {
	db *sqlx.DB
}

// NewSwapRepository constructs a SwapRepository.
func NewSwapRepository(db *sqlx.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

// List returns all swap requests in creation order (ascending ID).
func (r *SwapRepository) List(ctx context.Context) ([]models.SwapRequest, error) {
	const query = `SELECT id, from_team_id, to_team_id, from_date, to_date, status, created_at, updated_at
		FROM swap_requests ORDER BY id ASC`
	swaps := []models.SwapRequest{}
	if err := r.db.SelectContext(ctx, &swaps, query); err != nil {
		return nil, fmt.Errorf("list swap requests: %w", err)
	}
	return swaps, nil
}

// FindByID fetches a swap request by ID.
func (r *SwapRepository) FindByID(ctx context.Context, id int64) (*models.SwapRequest, error) {
	const query = `SELECT id, from_team_id, to_team_id, from_date, to_date, status, created_at, updated_at
		FROM swap_requests WHERE id = $1`
	var swap models.SwapRequest
	if err := r.db.GetContext(ctx, &swap, query, id); err != nil {
		return nil, err
	}
	return &swap, nil
}

// Create inserts a new swap request. The caller supplies the creation-time
// based ID.
func (r *SwapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	now := time.Now().UTC()
	swap.CreatedAt = now
	swap.UpdatedAt = now

	const query = `INSERT INTO swap_requests (id, from_team_id, to_team_id, from_date, to_date, status, created_at, updated_at)
		VALUES (:id, :from_team_id, :to_team_id, :from_date, :to_date, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, swap); err != nil {
		return fmt.Errorf("create swap request: %w", err)
	}
	return nil
}

// UpdateStatusFromPending transitions a pending request to a terminal status.
// It reports false when no row changed, i.e. the request does not exist or
// has already been finalized; pending is the only state the database lets go
// of.
func (r *SwapRepository) UpdateStatusFromPending(ctx context.Context, id int64, status models.SwapStatus) (bool, error) {
	const query = `UPDATE swap_requests SET status = $2, updated_at = $3 WHERE id = $1 AND status = 'pending'`
	result, err := r.db.ExecContext(ctx, query, id, status, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("update swap status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update swap status: %w", err)
	}
	return affected > 0, nil
}
