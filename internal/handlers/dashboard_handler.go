package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hudumaworks/utility-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) ReportStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.ReportStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
