package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hudumaworks/utility-backend/internal/apperr"
	"github.com/hudumaworks/utility-backend/internal/dto"
)

var kindStatus = map[apperr.Kind]int{
	apperr.KindValidation:   fiber.StatusBadRequest,
	apperr.KindInvalidState: fiber.StatusBadRequest,
	apperr.KindForbidden:    fiber.StatusForbidden,
	apperr.KindNotFound:     fiber.StatusNotFound,
	apperr.KindConflict:     fiber.StatusConflict,
}

// respondError maps classified service errors to HTTP statuses; anything
// unclassified is a store or internal failure and stays opaque.
func respondError(c *fiber.Ctx, err error) error {
	if kind, ok := apperr.KindOf(err); ok {
		return c.Status(kindStatus[kind]).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
