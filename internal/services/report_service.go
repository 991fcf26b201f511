package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/apperr"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/geo"
	"github.com/hudumaworks/utility-backend/internal/models"
	"gorm.io/gorm"
)

// ReportService owns the report lifecycle: submission, status transitions,
// reopen negotiation and assignment. Every mutation re-reads the current
// row first; the store's single-row atomicity is the only ordering
// guarantee (last write wins on concurrent updates).
type ReportService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewReportService(db *gorm.DB, audit *AuditService) *ReportService {
	return &ReportService{db: db, audit: audit}
}

// Submit validates and stores a new report owned by the acting user.
func (s *ReportService) Submit(act actor.Actor, req *dto.SubmitReportRequest) (*models.Report, error) {
	if req.Title == "" || req.Description == "" || req.Category == "" {
		return nil, apperr.Validation("Missing required fields.")
	}
	if len(req.Location.Coordinates) != 2 {
		return nil, apperr.Validation("Coordinates must be an array [longitude, latitude].")
	}

	lng, lat := req.Location.Coordinates[0], req.Location.Coordinates[1]
	if !geo.ValidLongitude(lng) || !geo.ValidLatitude(lat) {
		return nil, apperr.Validation("Coordinates out of range.")
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, apperr.Validation("Invalid priority value.")
	}

	attachments := req.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	report := models.Report{
		ID:          uuid.New(),
		UserID:      act.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Longitude:   lng,
		Latitude:    lat,
		Status:      models.StatusPending,
		Priority:    priority,
		Attachments: attachments,
		Reopen:      models.ReopenRequest{Status: models.ReopenNone},
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// GetStatus returns the lifecycle status of a report. Non-admin actors
// may only read their own reports.
func (s *ReportService) GetStatus(act actor.Actor, reportID uuid.UUID) (string, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		return "", apperr.NotFound("Report not found")
	}

	if !act.IsAdmin() && report.UserID != act.ID {
		return "", apperr.Forbidden("Access denied")
	}

	return report.Status, nil
}

// ListMine returns the actor's reports, newest first.
func (s *ReportService) ListMine(act actor.Actor) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Where("user_id = ?", act.ID).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// FilterMine filters the actor's own reports by category, status and priority.
func (s *ReportService) FilterMine(act actor.Actor, category, status, priority string) ([]models.Report, error) {
	query := s.db.Where("user_id = ?", act.ID)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if status != "" {
		if !models.ValidStatus(status) {
			return nil, apperr.Validation("Invalid status value.")
		}
		query = query.Where("status = ?", status)
	}
	if priority != "" {
		if !models.ValidPriority(priority) {
			return nil, apperr.Validation("Invalid priority value.")
		}
		query = query.Where("priority = ?", priority)
	}

	var reports []models.Report
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListAll returns every report, newest first. Admin only at the route level.
func (s *ReportService) ListAll() ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// RequestReopen opens a reopen negotiation on one of the actor's resolved
// reports. A report carries at most one pending request at a time.
func (s *ReportService) RequestReopen(act actor.Actor, reportID uuid.UUID, reason string) (*models.Report, error) {
	if reason == "" {
		return nil, apperr.Validation("A reason is required.")
	}

	var report models.Report
	if err := s.db.First(&report, "id = ? AND user_id = ?", reportID, act.ID).Error; err != nil {
		return nil, apperr.NotFound("Report not found")
	}

	if report.Status != models.StatusResolved {
		return nil, apperr.InvalidState("Only resolved reports can be reopened.")
	}
	if report.Reopen.Status == models.ReopenPending {
		return nil, apperr.InvalidState("You already have a pending reopen request.")
	}

	now := time.Now()
	report.Reopen = models.ReopenRequest{
		Status:      models.ReopenPending,
		Reason:      reason,
		RequestedAt: &now,
	}

	if err := s.db.Save(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to save reopen request: %w", err)
	}
	return &report, nil
}

// ReviewReopen approves or rejects a pending reopen request. Approval
// moves the report back to Pending; rejection requires an admin response
// and leaves the report status untouched.
func (s *ReportService) ReviewReopen(act actor.Actor, reportID uuid.UUID, action, adminResponse string) (*models.Report, error) {
	if action != "approve" && action != "reject" {
		return nil, apperr.Validation(`Invalid action. Use "approve" or "reject".`)
	}

	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		return nil, apperr.NotFound("Report not found")
	}

	if report.Reopen.Status != models.ReopenPending {
		return nil, apperr.InvalidState("No pending reopen request for this report.")
	}

	if action == "approve" {
		report.Status = models.StatusPending
		report.Reopen.Status = models.ReopenApproved
	} else {
		if adminResponse == "" {
			return nil, apperr.Validation("Rejection must include a reason.")
		}
		report.Reopen.Status = models.ReopenRejected
		report.Reopen.AdminResponse = adminResponse
	}

	now := time.Now()
	report.Reopen.ReviewedAt = &now

	if err := s.db.Save(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to save reopen review: %w", err)
	}

	s.audit.Record(ActionReopenReviewed, act.ID, map[string]interface{}{
		"report_id": report.ID,
		"decision":  action,
	})

	return &report, nil
}

// UpdateStatus sets a report's lifecycle status. The audit entry carries
// both the old and new status.
func (s *ReportService) UpdateStatus(act actor.Actor, reportID uuid.UUID, status string) (*models.Report, error) {
	if !models.ValidStatus(status) {
		return nil, apperr.Validation("Invalid status value.")
	}

	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		return nil, apperr.NotFound("Report not found.")
	}

	oldStatus := report.Status
	report.Status = status

	if err := s.db.Save(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to update report status: %w", err)
	}

	s.audit.Record(ActionReportUpdated, act.ID, map[string]interface{}{
		"report_id":  report.ID,
		"old_status": oldStatus,
		"new_status": report.Status,
	})

	return &report, nil
}

// Assign routes a report to an admin. Reassignment is allowed; the audit
// entry records the prior assignee when one existed.
func (s *ReportService) Assign(act actor.Actor, reportID, assigneeID uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		return nil, apperr.NotFound("Report not found.")
	}

	var assignee models.User
	if err := s.db.First(&assignee, "id = ?", assigneeID).Error; err != nil {
		return nil, apperr.NotFound("Assignee not found.")
	}
	if assignee.Role != models.RoleAdmin {
		return nil, apperr.Validation("Invalid admin ID.")
	}

	details := map[string]interface{}{
		"report_id":   report.ID,
		"assigned_to": assignee.ID,
	}
	if report.AssignedTo != nil {
		details["previous_assignee"] = *report.AssignedTo
	}

	report.AssignedTo = &assignee.ID
	if err := s.db.Save(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to assign report: %w", err)
	}

	s.audit.Record(ActionReportAssigned, act.ID, details)

	return &report, nil
}
