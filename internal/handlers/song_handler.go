package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"melodia/internal/models"
	"melodia/internal/services"
)

// SongHandler handles HTTP requests for songs.
type SongHandler struct {
	service  *services.SongService
	validate *validator.Validate
}

// NewSongHandler creates a new SongHandler.
func NewSongHandler(service *services.SongService) *SongHandler {
	return &SongHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the song routes.
func (h *SongHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group("/songs")
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGet)
	routes.Post("/", auth, h.HandleCreate)
	routes.Put("/:id", auth, h.HandleUpdate)
	routes.Delete("/:id", auth, h.HandleDelete)
}

// HandleList returns a page of songs ordered by id.
func (h *SongHandler) HandleList(c *fiber.Ctx) error {
	limit, offset, err := parseListArgs(c)
	if err != nil {
		return respondError(c, err)
	}
	songs, err := h.service.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(songs)
}

// HandleGet returns a single song by id.
func (h *SongHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	song, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(song)
}

// HandleCreate creates a new song. Dangling album_id or artist_id values
// are rejected by the store.
func (h *SongHandler) HandleCreate(c *fiber.Ctx) error {
	var song models.Song
	if err := c.BodyParser(&song); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(song); err != nil {
		return respondValidationError(c, err)
	}
	if err := h.service.Create(&song); err != nil {
		return respondError(c, err)
	}
	return c.JSON(song)
}

// HandleUpdate applies a partial update and returns the full record.
func (h *SongHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	var upd models.SongUpdate
	if err := c.BodyParser(&upd); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(upd); err != nil {
		return respondValidationError(c, err)
	}
	song, err := h.service.Update(id, upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(song)
}

// HandleDelete removes a song and returns a confirmation.
func (h *SongHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Song deleted successfully"})
}
