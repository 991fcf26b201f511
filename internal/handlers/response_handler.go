package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/services"
)

type ResponseHandler struct {
	responseService *services.ResponseService
}

func NewResponseHandler(responseService *services.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseService: responseService}
}

func (h *ResponseHandler) AdminRespond(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.AdminRespondRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.responseService.Respond(act, reportID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "Admin response recorded successfully.",
		"response":       result.Response,
		"updated_status": result.UpdatedStatus,
	})
}

func (h *ResponseHandler) ListForReport(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	responses, err := h.responseService.ListForReport(act, reportID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(responses)
}

func (h *ResponseHandler) AddFeedback(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return badRequest(c, "Invalid response ID")
	}

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	response, err := h.responseService.AddFeedback(act, responseID, req.Comment)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Feedback added successfully.",
		"response": response,
	})
}

func (h *ResponseHandler) DeleteFeedback(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return badRequest(c, "Invalid response ID")
	}

	if err := h.responseService.DeleteFeedback(act, responseID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Feedback deleted successfully."})
}

func (h *ResponseHandler) Edit(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return badRequest(c, "Invalid response ID")
	}

	var req dto.EditResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	response, err := h.responseService.Edit(act, responseID, req.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Response updated successfully.",
		"response": response,
	})
}

func (h *ResponseHandler) Delete(c *fiber.Ctx) error {
	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return badRequest(c, "Invalid response ID")
	}

	if err := h.responseService.Delete(responseID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Response deleted successfully."})
}
