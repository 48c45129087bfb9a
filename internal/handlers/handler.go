package handlers

import (
	"errors"
	"log/slog"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/dto"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/identity"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/services"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the service failure taxonomy onto HTTP statuses.
// Unrecognized errors are logged and surfaced as a generic 500 without
// internal detail.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidPayload),
		errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Forbidden"})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Not found"})
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Email already exists"})
	default:
		slog.Error("unhandled service error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", requestID(c),
			"error", err.Error(),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal server error"})
	}
}

// caller resolves the authenticated identity or writes a 401.
func caller(c *fiber.Ctx) (identity.Identity, bool) {
	actor, err := identity.FromContext(c)
	if err != nil {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
		return identity.Identity{}, false
	}
	return actor, true
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
