package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(act.ID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully.",
		"user":    user,
	})
}
