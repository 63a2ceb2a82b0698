package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"melodia/internal/models"
	"melodia/internal/services"
)

// ArtistHandler handles HTTP requests for artists.
type ArtistHandler struct {
	service  *services.ArtistService
	validate *validator.Validate
}

// NewArtistHandler creates a new ArtistHandler.
func NewArtistHandler(service *services.ArtistService) *ArtistHandler {
	return &ArtistHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the artist routes. Reads are public; mutations
// sit behind the auth guard.
func (h *ArtistHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group("/artists")
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGet)
	routes.Post("/", auth, h.HandleCreate)
	routes.Put("/:id", auth, h.HandleUpdate)
	routes.Delete("/:id", auth, h.HandleDelete)
}

// HandleList returns a page of artists ordered by id.
func (h *ArtistHandler) HandleList(c *fiber.Ctx) error {
	limit, offset, err := parseListArgs(c)
	if err != nil {
		return respondError(c, err)
	}
	artists, err := h.service.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(artists)
}

// HandleGet returns a single artist by id.
func (h *ArtistHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	artist, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(artist)
}

// HandleCreate creates a new artist and returns it with its generated id.
func (h *ArtistHandler) HandleCreate(c *fiber.Ctx) error {
	var artist models.Artist
	if err := c.BodyParser(&artist); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(artist); err != nil {
		return respondValidationError(c, err)
	}
	if err := h.service.Create(&artist); err != nil {
		return respondError(c, err)
	}
	return c.JSON(artist)
}

// HandleUpdate applies a partial update and returns the full record.
func (h *ArtistHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	var upd models.ArtistUpdate
	if err := c.BodyParser(&upd); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(upd); err != nil {
		return respondValidationError(c, err)
	}
	artist, err := h.service.Update(id, upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(artist)
}

// HandleDelete removes an artist and returns a confirmation.
func (h *ArtistHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Artist deleted successfully"})
}
