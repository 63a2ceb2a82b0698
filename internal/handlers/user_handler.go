package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"melodia/internal/models"
	"melodia/internal/services"
)

// UserHandler handles HTTP requests for the generic user CRUD. Account
// registration lives on the auth routes; this path exists for
// administrative user management and performs no uniqueness checks.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group("/users")
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGet)
	routes.Post("/", auth, h.HandleCreate)
	routes.Put("/:id", auth, h.HandleUpdate)
	routes.Delete("/:id", auth, h.HandleDelete)
}

// CreateUserRequest is the payload for the generic user create. The boolean
// flags are optional; absent values take the account defaults.
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Password    string `json:"password" validate:"required,min=6"`
	RoleID      *uint  `json:"role_id"`
	IsActive    *bool  `json:"is_active"`
	IsSuperuser *bool  `json:"is_superuser"`
	IsVerified  *bool  `json:"is_verified"`
}

// HandleList returns a page of users ordered by id. Password hashes are
// never serialized.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	limit, offset, err := parseListArgs(c)
	if err != nil {
		return respondError(c, err)
	}
	users, err := h.service.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleGet returns a single user by id.
func (h *UserHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleCreate creates a new user with a hashed password.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user := models.User{
		Email:       req.Email,
		Username:    req.Username,
		RoleID:      req.RoleID,
		IsActive:    true,
		IsSuperuser: false,
		IsVerified:  false,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsSuperuser != nil {
		user.IsSuperuser = *req.IsSuperuser
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}

	if err := h.service.Create(&user, req.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleUpdate applies a partial update and returns the full record.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	var upd models.UserUpdate
	if err := c.BodyParser(&upd); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(upd); err != nil {
		return respondValidationError(c, err)
	}
	user, err := h.service.Update(id, upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleDelete removes a user and returns a confirmation.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
