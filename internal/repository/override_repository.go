package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/caleb-rm/worship-rota-api/internal/models"
)

// OverrideRepository manages persistence for manual date overrides.
type OverrideRepository struct {
	db *sqlx.DB
}

// NewOverrideRepository constructs an OverrideRepository.
func NewOverrideRepository(db *sqlx.DB) *OverrideRepository {
	return &OverrideRepository{db: db}
}

// List returns all overrides ordered by date.
func (r *OverrideRepository) List(ctx context.Context) ([]models.ManualOverride, error) {
	const query = `SELECT date, team_id, created_at, updated_at FROM manual_overrides ORDER BY date ASC`
	overrides := []models.ManualOverride{}
	if err := r.db.SelectContext(ctx, &overrides, query); err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	return overrides, nil
}

// Map returns the override collection keyed by date, the shape the rota
// resolver consumes.
func (r *OverrideRepository) Map(ctx context.Context) (map[string]int64, error) {
	overrides, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(overrides))
	for _, o := range overrides {
		result[o.Date] = o.TeamID
	}
	return result, nil
}

// Upsert writes an override for a date, replacing any existing entry. Map
// semantics: at most one entry per date.
func (r *OverrideRepository) Upsert(ctx context.Context, date string, teamID int64) error {
	now := time.Now().UTC()
	const query = `INSERT INTO manual_overrides (date, team_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (date) DO UPDATE SET team_id = EXCLUDED.team_id, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, date, teamID, now); err != nil {
		return fmt.Errorf("upsert override: %w", err)
	}
	return nil
}

// Delete clears the override for a date, reporting whether one existed.
func (r *OverrideRepository) Delete(ctx context.Context, date string) (bool, error) {
	const query = `DELETE FROM manual_overrides WHERE date = $1`
	result, err := r.db.ExecContext(ctx, query, date)
	if err != nil {
		return false, fmt.Errorf("delete override: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete override: %w", err)
	}
	return affected > 0, nil
}
