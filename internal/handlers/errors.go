package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"melodia/internal/apperrors"
)

// respondError translates the shared error taxonomy into the HTTP surface.
// Error bodies always carry a machine-stable code and a human message; raw
// store errors never reach the client.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":    "not_found",
			"message": err.Error(),
		})
	case errors.Is(err, apperrors.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":    "conflict",
			"message": err.Error(),
		})
	case errors.Is(err, apperrors.ErrIntegrity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "integrity_violation",
			"message": err.Error(),
		})
	case errors.Is(err, apperrors.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "validation_failed",
			"message": err.Error(),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		// One shape for every auth failure so accounts cannot be enumerated.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    "authentication_failed",
			"message": "Invalid credentials",
		})
	default:
		logrus.Errorf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    "internal_error",
			"message": "Internal server error",
		})
	}
}

// respondValidationError renders validator failures with a per-field error
// map alongside the stable code.
func respondValidationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return respondError(c, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation))
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    "validation_failed",
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// errInvalidBody wraps a body-parsing failure into the validation bucket.
func errInvalidBody(err error) error {
	return fmt.Errorf("invalid request body: %v: %w", err, apperrors.ErrValidation)
}
