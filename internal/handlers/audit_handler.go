package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hudumaworks/utility-backend/internal/services"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) List(c *fiber.Ctx) error {
	logs, err := h.auditService.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}
