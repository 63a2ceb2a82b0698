package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"melodia/internal/services"
)

// AuthRequired is a Fiber middleware that rejects requests without a valid
// bearer token. The verified identity and the raw token are stored in the
// request locals for downstream handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "authentication_failed",
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "authentication_failed",
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		tokenString := parts[1]

		identity, err := authService.ValidateToken(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "authentication_failed",
				"message": "Invalid or expired token",
			})
		}

		c.Locals("identity", identity)
		c.Locals("token", tokenString)

		return c.Next()
	}
}
