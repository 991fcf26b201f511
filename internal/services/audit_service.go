package services

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Audit action labels.
const (
	ActionReportUpdated       = "Report Updated"
	ActionReportAssigned      = "Report Assigned"
	ActionReopenReviewed      = "Reopen Request Reviewed"
	ActionAdminResponded      = "Admin Responded to Report"
	ActionApplicationApproved = "Application Approved"
	ActionApplicationRejected = "Application Rejected"
)

// AuditService is the append-only sink for administrative actions.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Record writes an audit entry. It is best-effort: a failed write must
// never fail the primary state change, so errors are only logged.
func (s *AuditService) Record(action string, performedBy uuid.UUID, details map[string]interface{}) {
	entry := models.AuditLog{
		ID:          uuid.New(),
		Action:      action,
		PerformedBy: performedBy,
	}

	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			entry.Details = datatypes.JSON(b)
		}
	}

	if err := s.db.Create(&entry).Error; err != nil {
		slog.Error("failed to write audit log", "action", action, "error", err)
	}
}

// List returns all audit entries, newest first.
func (s *AuditService) List() ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if err := s.db.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
