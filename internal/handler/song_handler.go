package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	"github.com/caleb-rm/worship-rota-api/internal/models"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
	"github.com/caleb-rm/worship-rota-api/pkg/response"
)

type songService interface {
	List(ctx context.Context, search string) ([]models.Song, error)
	Get(ctx context.Context, slug string) (*models.Song, error)
	Save(ctx context.Context, req dto.SongRequest) (*models.Song, error)
	Update(ctx context.Context, slug string, req dto.SongRequest) (*models.Song, error)
	Import(ctx context.Context, req dto.SongImportRequest) (int, error)
	Export(ctx context.Context) ([]models.Song, error)
	Delete(ctx context.Context, slug string) error
}

// SongHandler exposes the song library endpoints.
type SongHandler struct {
	service songService
}

// NewSongHandler builds a new handler.
func NewSongHandler(service songService) *SongHandler {
	return &SongHandler{service: service}
}

// List godoc
// @Summary List songs
// @Tags Songs
// @Produce json
// @Param search query string false "Filter by title or link"
// @Success 200 {object} response.Envelope
// @Router /songs [get]
func (h *SongHandler) List(c *gin.Context) {
	songs, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, songs, nil)
}

// Get godoc
// @Summary Get a song by slug
// @Tags Songs
// @Produce json
// @Param slug path string true "Song slug"
// @Success 200 {object} response.Envelope
// @Router /songs/{slug} [get]
func (h *SongHandler) Get(c *gin.Context) {
	song, err := h.service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, song, nil)
}

// Save godoc
// @Summary Add or update a song
// @Description The slug is derived from the title, so re-adding a title updates the existing entry.
// @Tags Songs
// @Accept json
// @Produce json
// @Param payload body dto.SongRequest true "Song payload"
// @Success 201 {object} response.Envelope
// @Router /songs [post]
func (h *SongHandler) Save(c *gin.Context) {
	var req dto.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid song payload"))
		return
	}
	song, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, song)
}

// Update godoc
// @Summary Update a song
// @Description A changed title moves the entry to the new slug.
// @Tags Songs
// @Accept json
// @Produce json
// @Param slug path string true "Song slug"
// @Param payload body dto.SongRequest true "Song payload"
// @Success 200 {object} response.Envelope
// @Router /songs/{slug} [put]
func (h *SongHandler) Update(c *gin.Context) {
	var req dto.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid song payload"))
		return
	}
	song, err := h.service.Update(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, song, nil)
}

// Import godoc
// @Summary Import a batch of songs
// @Tags Songs
// @Accept json
// @Produce json
// @Param payload body dto.SongImportRequest true "Import payload"
// @Success 200 {object} response.Envelope
// @Router /songs/import [post]
func (h *SongHandler) Import(c *gin.Context) {
	var req dto.SongImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid import payload"))
		return
	}
	count, err := h.service.Import(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"imported": count}, nil)
}

// Export godoc
// @Summary Export the song library
// @Tags Songs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /songs/export [get]
func (h *SongHandler) Export(c *gin.Context) {
	songs, err := h.service.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="songs.json"`)
	response.JSON(c, http.StatusOK, songs, nil)
}

// Delete godoc
// @Summary Delete a song
// @Tags Songs
// @Param slug path string true "Song slug"
// @Success 204
// @Router /songs/{slug} [delete]
func (h *SongHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
