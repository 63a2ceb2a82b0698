package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"melodia/internal/models"
	"melodia/internal/services"
)

// RoleHandler handles HTTP requests for roles.
type RoleHandler struct {
	service  *services.RoleService
	validate *validator.Validate
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(service *services.RoleService) *RoleHandler {
	return &RoleHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the role routes.
func (h *RoleHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group("/roles")
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGet)
	routes.Post("/", auth, h.HandleCreate)
	routes.Put("/:id", auth, h.HandleUpdate)
	routes.Delete("/:id", auth, h.HandleDelete)
}

// HandleList returns a page of roles ordered by id.
func (h *RoleHandler) HandleList(c *fiber.Ctx) error {
	limit, offset, err := parseListArgs(c)
	if err != nil {
		return respondError(c, err)
	}
	roles, err := h.service.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(roles)
}

// HandleGet returns a single role by id.
func (h *RoleHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	role, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(role)
}

// HandleCreate creates a new role. An absent permission set defaults to an
// empty map.
func (h *RoleHandler) HandleCreate(c *fiber.Ctx) error {
	var role models.Role
	if err := c.BodyParser(&role); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(role); err != nil {
		return respondValidationError(c, err)
	}
	if err := h.service.Create(&role); err != nil {
		return respondError(c, err)
	}
	return c.JSON(role)
}

// HandleUpdate applies a partial update and returns the full record.
func (h *RoleHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	var upd models.RoleUpdate
	if err := c.BodyParser(&upd); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(upd); err != nil {
		return respondValidationError(c, err)
	}
	role, err := h.service.Update(id, upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(role)
}

// HandleDelete removes a role and returns a confirmation.
func (h *RoleHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Role deleted successfully"})
}
