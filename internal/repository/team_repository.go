package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/caleb-rm/worship-rota-api/internal/models"
)

// TeamRepository manages persistence for worship teams.
type TeamRepository struct {
	db *sqlx.DB
}

// NewTeamRepository constructs a TeamRepository.
func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// List returns all teams in rotation order.
func (r *TeamRepository) List(ctx context.Context) ([]models.Team, error) {
	const query = `SELECT id, leader, members, position, created_at, updated_at FROM teams ORDER BY position ASC, id ASC`
	teams := []models.Team{}
	if err := r.db.SelectContext(ctx, &teams, query); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// FindByID fetches a team by ID.
func (r *TeamRepository) FindByID(ctx context.Context, id int64) (*models.Team, error) {
	const query = `SELECT id, leader, members, position, created_at, updated_at FROM teams WHERE id = $1`
	var team models.Team
	if err := r.db.GetContext(ctx, &team, query, id); err != nil {
		return nil, err
	}
	return &team, nil
}

// Create inserts a new team at the end of the rotation order.
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	now := time.Now().UTC()
	team.CreatedAt = now
	team.UpdatedAt = now

	const query = `INSERT INTO teams (leader, members, position, created_at, updated_at)
		VALUES ($1, $2, COALESCE((SELECT MAX(position) + 1 FROM teams), 0), $3, $4)
		RETURNING id, position`
	row := r.db.QueryRowxContext(ctx, query, team.Leader, team.Members, team.CreatedAt, team.UpdatedAt)
	if err := row.Scan(&team.ID, &team.Position); err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}

// Update modifies an existing team record.
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	team.UpdatedAt = time.Now().UTC()
	const query = `UPDATE teams SET leader = :leader, members = :members, position = :position, updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, team)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update team %d: %w", team.ID, ErrNoRows)
	}
	return nil
}

// Delete removes a team from the rotation.
func (r *TeamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM teams WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	return affected > 0, nil
}
