package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
)

type songRepository interface {
	List(ctx context.Context, search string) ([]models.Song, error)
	FindBySlug(ctx context.Context, slug string) (*models.Song, error)
	Upsert(ctx context.Context, song *models.Song) error
	UpsertBatch(ctx context.Context, songs []models.Song) error
	Delete(ctx context.Context, slug string) (bool, error)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Short words kept lowercase when title-casing, unless first or last.
var minorWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "for": true, "in": true, "nor": true,
	"of": true, "on": true, "or": true, "so": true, "the": true,
	"to": true, "up": true, "yet": true,
}

// SongService manages the auxiliary song library. Titles are stored
// lowercase and trimmed; the slug derived from the title is the identity, so
// re-adding a title updates the existing entry.
type SongService struct {
	repo      songRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSongService constructs a SongService.
func NewSongService(repo songRepository, validate *validator.Validate, logger *zap.Logger) *SongService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SongService{repo: repo, validator: validate, logger: logger}
}

// List returns songs ordered by title, filtered by search across title and
// links.
func (s *SongService) List(ctx context.Context, search string) ([]models.Song, error) {
	songs, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list songs")
	}
	return songs, nil
}

// Get fetches one song by slug.
func (s *SongService) Get(ctx context.Context, slug string) (*models.Song, error) {
	song, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "song not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch song")
	}
	return song, nil
}

// Save adds or updates a song keyed by the slug of its title.
func (s *SongService) Save(ctx context.Context, req dto.SongRequest) (*models.Song, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid song payload")
	}

	song, err := songFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, song); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save song")
	}

	s.logger.Info("song saved", zap.String("slug", song.Slug))
	return song, nil
}

// Update rewrites an existing song. When the new title slugs differently the
// entry moves: the new slug is written and the old one removed.
func (s *SongService) Update(ctx context.Context, slug string, req dto.SongRequest) (*models.Song, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid song payload")
	}

	existing, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	song, err := songFromRequest(req)
	if err != nil {
		return nil, err
	}
	song.CreatedAt = existing.CreatedAt
	if err := s.repo.Upsert(ctx, song); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update song")
	}
	if song.Slug != slug {
		if _, err := s.repo.Delete(ctx, slug); err != nil {
			s.logger.Warn("failed to remove renamed song", zap.String("slug", slug), zap.Error(err))
		}
	}

	s.logger.Info("song updated", zap.String("slug", song.Slug))
	return song, nil
}

// Import loads a batch of songs atomically, typically from a library export.
func (s *SongService) Import(ctx context.Context, req dto.SongImportRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}

	// Last occurrence of a duplicate slug wins, matching single-save
	// semantics.
	bySlug := make(map[string]int, len(req.Songs))
	songs := make([]models.Song, 0, len(req.Songs))
	for _, item := range req.Songs {
		song, err := songFromRequest(item)
		if err != nil {
			return 0, err
		}
		if idx, ok := bySlug[song.Slug]; ok {
			songs[idx] = *song
			continue
		}
		bySlug[song.Slug] = len(songs)
		songs = append(songs, *song)
	}

	if err := s.repo.UpsertBatch(ctx, songs); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import songs")
	}

	s.logger.Info("songs imported", zap.Int("count", len(songs)))
	return len(songs), nil
}

// Export returns the full library for download.
func (s *SongService) Export(ctx context.Context) ([]models.Song, error) {
	return s.List(ctx, "")
}

// Delete removes a song by slug.
func (s *SongService) Delete(ctx context.Context, slug string) error {
	deleted, err := s.repo.Delete(ctx, slug)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete song")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "song not found")
	}
	s.logger.Info("song deleted", zap.String("slug", slug))
	return nil
}

func songFromRequest(req dto.SongRequest) (*models.Song, error) {
	title := strings.ToLower(strings.TrimSpace(req.Title))
	slug := Slugify(title)
	if slug == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "title must contain letters or digits")
	}
	return &models.Song{
		Slug:    slug,
		Title:   title,
		Artist:  strings.TrimSpace(req.Artist),
		Link1:   strings.TrimSpace(req.Link1),
		Link2:   strings.TrimSpace(req.Link2),
		Spotify: strings.TrimSpace(req.Spotify),
	}, nil
}

// Slugify lowercases a title and collapses every non-alphanumeric run into a
// single hyphen, trimming leading and trailing hyphens.
func Slugify(title string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// TitleCase renders a stored lowercase title for display, keeping minor
// words lowercase except in first or last position.
func TitleCase(title string) string {
	words := strings.Split(strings.ToLower(title), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		if minorWords[word] && i != 0 && i != len(words)-1 {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
