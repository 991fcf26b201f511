package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
	queryService  *services.ReportQueryService
}

func NewReportHandler(reportService *services.ReportService, queryService *services.ReportQueryService) *ReportHandler {
	return &ReportHandler{reportService: reportService, queryService: queryService}
}

func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reportService.Submit(act, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Report submitted successfully.",
		"report":  report,
	})
}

func (h *ReportHandler) GetStatus(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	status, err := h.reportService.GetStatus(act, reportID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.ReportStatusResponse{Status: status})
}

func (h *ReportHandler) MyReports(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reports, err := h.reportService.ListMine(act)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(reports)
}

func (h *ReportHandler) FilterMyReports(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reports, err := h.reportService.FilterMine(act,
		c.Query("category"), c.Query("status"), c.Query("priority"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(reports)
}

func (h *ReportHandler) RequestReopen(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.ReopenRequestBody
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reportService.RequestReopen(act, reportID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Reopen request submitted. Awaiting admin approval.",
		"report":  report,
	})
}

func (h *ReportHandler) ReviewReopen(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.ReopenReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reportService.ReviewReopen(act, reportID, req.Action, req.AdminResponse)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Report reopening request " + req.Action + "d.",
		"report":  report,
	})
}

func (h *ReportHandler) UpdateStatus(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reportService.UpdateStatus(act, reportID, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":       "Report status updated.",
		"updatedReport": report,
	})
}

func (h *ReportHandler) Assign(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.AssignReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reportService.Assign(act, reportID, req.AssignedTo)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Report assigned successfully.",
		"report":  report,
	})
}

func (h *ReportHandler) ListAll(c *fiber.Ctx) error {
	reports, err := h.reportService.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reports)
}

func (h *ReportHandler) Search(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	params := services.SearchParams{
		Query:        c.Query("query"),
		Status:       c.Query("status"),
		Priority:     c.Query("priority"),
		AssignedToMe: c.Query("assignedTo") == "me",
		Page:         page,
		Limit:        limit,
	}
	params.StartDate, params.EndDate = parseDateRange(c)

	result, err := h.queryService.Search(act, params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

func (h *ReportHandler) Filter(c *fiber.Ctx) error {
	reports, err := h.queryService.FilterByAttributes(
		c.Query("category"), c.Query("status"), c.Query("priority"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(reports)
}

func (h *ReportHandler) Nearby(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lngErr != nil {
		return badRequest(c, "Latitude and longitude are required.")
	}
	radius, err := strconv.ParseFloat(c.Query("radius"), 64)
	if err != nil {
		radius = 10
	}

	reports, err := h.queryService.Nearby(lat, lng, radius)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(reports)
}

func (h *ReportHandler) Export(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	params := services.ExportParams{
		Format: c.Query("format"),
		Status: c.Query("status"),
	}
	params.StartDate, params.EndDate = parseDateRange(c)

	result, err := h.queryService.Export(act, params)
	if err != nil {
		return respondError(c, err)
	}

	c.Set("Content-Type", result.ContentType)
	c.Set("Content-Disposition", "attachment; filename="+result.Filename)
	c.Set("Cache-Control", "no-cache")
	return c.Send(result.Data)
}

// parseDateRange reads startDate/endDate query params; both must be
// present and well-formed for the range to apply.
func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time) {
	start, errS := time.Parse("2006-01-02", c.Query("startDate"))
	end, errE := time.Parse("2006-01-02", c.Query("endDate"))
	if errS != nil || errE != nil {
		return nil, nil
	}
	// Include the whole end day.
	end = end.Add(24*time.Hour - time.Nanosecond)
	return &start, &end
}
