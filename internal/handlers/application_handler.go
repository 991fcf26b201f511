package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	app, err := h.applicationService.Submit(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Application submitted successfully.",
		"application": app,
	})
}

func (h *ApplicationHandler) GetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	status, err := h.applicationService.GetStatus(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"status": status})
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	app, err := h.applicationService.Get(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(app)
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	apps, err := h.applicationService.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(apps)
}

func (h *ApplicationHandler) Approve(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	result, err := h.applicationService.Approve(act, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":            "Application approved and user account created.",
		"user":               dto.NewUserResponse(result.User),
		"temporary_password": result.TemporaryPassword,
	})
}

func (h *ApplicationHandler) Reject(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	var req dto.RejectApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	rejection, err := h.applicationService.Reject(act, id, req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Application rejected.",
		"rejection": rejection,
	})
}

func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	app, err := h.applicationService.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Application updated successfully.",
		"application": app,
	})
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	if err := h.applicationService.Delete(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Application deleted successfully."})
}
