package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"melodia/internal/services"
)

// AuthHandler handles HTTP requests for registration and sessions.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the auth routes. Register and login are public;
// logout needs the token it revokes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	jwtRoutes := authRoutes.Group("/jwt")
	jwtRoutes.Post("/login", h.HandleLogin)
	jwtRoutes.Post("/logout", auth, h.HandleLogout)
}

// RegisterRequest is the payload for account registration. The role is
// optional; a dangling role_id is rejected by the store.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   *uint  `json:"role_id"`
}

// LoginRequest is the payload for login. Username may also carry an email
// address.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates an account, rejecting duplicate emails and
// usernames with a conflict. The response never carries the password hash.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user, err := h.authService.Register(req.Email, req.Username, req.Password, req.RoleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleLogin verifies credentials and issues a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errInvalidBody(err))
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"token": token,
	})
}

// HandleLogout revokes the presented token for the remainder of its
// lifetime. The auth guard validated it and stashed it in the locals.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if err := h.authService.RevokeToken(c.UserContext(), token); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
