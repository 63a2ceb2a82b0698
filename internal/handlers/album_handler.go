package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"melodia/internal/models"
	"melodia/internal/services"
)

// AlbumHandler handles HTTP requests for albums.
type AlbumHandler struct {
	service  *services.AlbumService
	validate *validator.Validate
}

// NewAlbumHandler creates a new AlbumHandler.
func NewAlbumHandler(service *services.AlbumService) *AlbumHandler {
	return &AlbumHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the album routes.
func (h *AlbumHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group("/albums")
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGet)
	routes.Post("/", auth, h.HandleCreate)
	routes.Put("/:id", auth, h.HandleUpdate)
	routes.Delete("/:id", auth, h.HandleDelete)
}

// HandleList returns a page of albums ordered by id.
func (h *AlbumHandler) HandleList(c *fiber.Ctx) error {
	limit, offset, err := parseListArgs(c)
	if err != nil {
		return respondError(c, err)
	}
	albums, err := h.service.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(albums)
}

// HandleGet returns a single album by id.
func (h *AlbumHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	album, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(album)
}

// HandleCreate creates a new album. A malformed release_date fails JSON
// binding and reports a validation error; a dangling artist_id is rejected
// by the store.
func (h *AlbumHandler) HandleCreate(c *fiber.Ctx) error {
	var album models.Album
	if err := c.BodyParser(&album); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(album); err != nil {
		return respondValidationError(c, err)
	}
	if err := h.service.Create(&album); err != nil {
		return respondError(c, err)
	}
	return c.JSON(album)
}

// HandleUpdate applies a partial update and returns the full record.
func (h *AlbumHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	var upd models.AlbumUpdate
	if err := c.BodyParser(&upd); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(upd); err != nil {
		return respondValidationError(c, err)
	}
	album, err := h.service.Update(id, upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(album)
}

// HandleDelete removes an album and returns a confirmation.
func (h *AlbumHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Album deleted successfully"})
}
