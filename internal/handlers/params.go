package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"melodia/internal/apperrors"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

// parseListArgs reads the limit/offset query parameters, applying the
// defaults and rejecting negative or non-integer values.
func parseListArgs(c *fiber.Ctx) (limit, offset int, err error) {
	limit, err = parseNonNegative(c.Query("limit"), "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	offset, err = parseNonNegative(c.Query("offset"), "offset", defaultOffset)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func parseNonNegative(raw, name string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer: %w", name, apperrors.ErrValidation)
	}
	return v, nil
}

// parseIDParam reads the :id path parameter. A non-numeric id can never
// match a record, so it reports not-found rather than a validation error.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("record %q: %w", raw, apperrors.ErrNotFound)
	}
	return uint(v), nil
}
