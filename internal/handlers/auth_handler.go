package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid email/phone or password",
			})
		}
		return respondError(c, err)
	}

	return c.JSON(result)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.authService.Refresh(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid or expired refresh token",
			})
		}
		return respondError(c, err)
	}

	return c.JSON(result)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.Logout(&req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully."})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.userService.Get(act.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}
