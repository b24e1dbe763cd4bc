package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/caleb-rm/worship-rota-api/internal/models"
)

// SongRepository manages persistence for the song library.
type SongRepository struct {
	db *sqlx.DB
}

// NewSongRepository constructs a SongRepository.
func NewSongRepository(db *sqlx.DB) *SongRepository {
	return &SongRepository{db: db}
}

// List returns songs ordered by title, optionally filtered by a search term
// matched against title and links.
func (r *SongRepository) List(ctx context.Context, search string) ([]models.Song, error) {
	query := `SELECT slug, title, artist, link1, link2, spotify, created_at, updated_at FROM songs`
	var args []interface{}
	if search != "" {
		query += ` WHERE LOWER(title) LIKE $1 OR LOWER(link1) LIKE $1 OR LOWER(link2) LIKE $1`
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	query += ` ORDER BY title ASC`

	songs := []models.Song{}
	if err := r.db.SelectContext(ctx, &songs, query, args...); err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	return songs, nil
}

// FindBySlug fetches a song by its slug.
func (r *SongRepository) FindBySlug(ctx context.Context, slug string) (*models.Song, error) {
	const query = `SELECT slug, title, artist, link1, link2, spotify, created_at, updated_at FROM songs WHERE slug = $1`
	var song models.Song
	if err := r.db.GetContext(ctx, &song, query, slug); err != nil {
		return nil, err
	}
	return &song, nil
}

// Upsert writes a song keyed by slug.
func (r *SongRepository) Upsert(ctx context.Context, song *models.Song) error {
	now := time.Now().UTC()
	if song.CreatedAt.IsZero() {
		song.CreatedAt = now
	}
	song.UpdatedAt = now

	const query = `INSERT INTO songs (slug, title, artist, link1, link2, spotify, created_at, updated_at)
		VALUES (:slug, :title, :artist, :link1, :link2, :spotify, :created_at, :updated_at)
		ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, artist = EXCLUDED.artist,
			link1 = EXCLUDED.link1, link2 = EXCLUDED.link2, spotify = EXCLUDED.spotify,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, song); err != nil {
		return fmt.Errorf("upsert song: %w", err)
	}
	return nil
}

// UpsertBatch writes a set of songs atomically, used by library import.
func (r *SongRepository) UpsertBatch(ctx context.Context, songs []models.Song) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin song import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	const query = `INSERT INTO songs (slug, title, artist, link1, link2, spotify, created_at, updated_at)
		VALUES (:slug, :title, :artist, :link1, :link2, :spotify, :created_at, :updated_at)
		ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, artist = EXCLUDED.artist,
			link1 = EXCLUDED.link1, link2 = EXCLUDED.link2, spotify = EXCLUDED.spotify,
			updated_at = EXCLUDED.updated_at`
	for i := range songs {
		if songs[i].CreatedAt.IsZero() {
			songs[i].CreatedAt = now
		}
		songs[i].UpdatedAt = now
		if _, err = tx.NamedExecContext(ctx, query, songs[i]); err != nil {
			return fmt.Errorf("import song %q: %w", songs[i].Slug, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit song import: %w", err)
	}
	return nil
}

// Delete removes a song, reporting whether it existed.
func (r *SongRepository) Delete(ctx context.Context, slug string) (bool, error) {
	const query = `DELETE FROM songs WHERE slug = $1`
	result, err := r.db.ExecContext(ctx, query, slug)
	if err != nil {
		return false, fmt.Errorf("delete song: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete song: %w", err)
	}
	return affected > 0, nil
}
