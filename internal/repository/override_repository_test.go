package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideRepositoryMap(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewOverrideRepository(db)
	rows := sqlmock.NewRows([]string{"date", "team_id", "created_at", "updated_at"}).
		AddRow("2025-09-21", int64(3), time.Now(), time.Now()).
		AddRow("2025-12-25", int64(1), time.Now(), time.Now())
	mock.ExpectQuery("SELECT date, team_id").WillReturnRows(rows)

	result, err := repo.Map(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"2025-09-21": 3, "2025-12-25": 1}, result)
}

func TestOverrideRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewOverrideRepository(db)
	mock.ExpectExec("INSERT INTO manual_overrides").
		WithArgs("2025-09-21", int64(3), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), "2025-09-21", 3))
}

func TestOverrideRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewOverrideRepository(db)
	mock.ExpectExec("DELETE FROM manual_overrides").
		WithArgs("2030-01-06").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), "2030-01-06")
	require.NoError(t, err)
	assert.False(t, deleted)
}
