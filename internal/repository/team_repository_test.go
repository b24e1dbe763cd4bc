package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caleb-rm/worship-rota-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestTeamRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	rows := sqlmock.NewRows([]string{"id", "leader", "members", "position", "created_at", "updated_at"}).
		AddRow(int64(1), "Alice", pq.StringArray{"Alice", "Dan"}, 0, time.Now(), time.Now()).
		AddRow(int64(2), "Bob", pq.StringArray{"Bob"}, 1, time.Now(), time.Now())
	mock.ExpectQuery("SELECT id, leader, members").WillReturnRows(rows)

	teams, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Alice", teams[0].Leader)
	assert.Equal(t, int64(2), teams[1].ID)
}

func TestTeamRepositoryCreateAssignsPosition(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	mock.ExpectQuery("INSERT INTO teams").
		WithArgs("Carol", pq.StringArray{"Carol"}, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "position"}).AddRow(int64(3), 2))

	team := &models.Team{Leader: "Carol", Members: pq.StringArray{"Carol"}}
	require.NoError(t, repo.Create(context.Background(), team))
	assert.Equal(t, int64(3), team.ID)
	assert.Equal(t, 2, team.Position)
}

func TestTeamRepositoryUpdateMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	mock.ExpectExec("UPDATE teams").
		WillReturnResult(sqlmock.NewResult(0, 0))

	team := &models.Team{ID: 99, Leader: "Nobody", Members: pq.StringArray{}}
	err := repo.Update(context.Background(), team)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestTeamRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	mock.ExpectExec("DELETE FROM teams").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, deleted)
}
