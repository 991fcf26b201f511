package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/apperr"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/models"
	"gorm.io/gorm"
)

// feedbackEditWindow bounds how long users may edit their own feedback,
// measured from the feedback entry's creation time.
const feedbackEditWindow = time.Hour

// ResponseService manages admin response threads on reports and the
// bounded-time citizen feedback attached to them.
type ResponseService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewResponseService(db *gorm.DB, audit *AuditService) *ResponseService {
	return &ResponseService{db: db, audit: audit}
}

// Respond records an admin response on a report, optionally moving the
// report to a new status in the same operation.
func (s *ResponseService) Respond(act actor.Actor, reportID uuid.UUID, req *dto.AdminRespondRequest) (*dto.AdminRespondResult, error) {
	if req.Message == "" {
		return nil, apperr.Validation("Response message is required.")
	}
	if req.Status != "" && !models.ValidStatus(req.Status) {
		return nil, apperr.Validation("Invalid status value.")
	}

	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		return nil, apperr.NotFound("Report not found.")
	}

	response := models.ReportResponse{
		ID:          uuid.New(),
		ReportID:    report.ID,
		ResponderID: act.ID,
		Message:     req.Message,
		Feedback:    []models.ResponseFeedback{},
	}
	if err := s.db.Create(&response).Error; err != nil {
		return nil, fmt.Errorf("failed to create response: %w", err)
	}

	updatedStatus := report.Status
	if req.Status != "" {
		report.Status = req.Status
		if err := s.db.Save(&report).Error; err != nil {
			return nil, fmt.Errorf("failed to update report status: %w", err)
		}
		updatedStatus = req.Status
	}

	s.audit.Record(ActionAdminResponded, act.ID, map[string]interface{}{
		"report_id": report.ID,
		"response":  req.Message,
		"status":    updatedStatus,
	})

	return &dto.AdminRespondResult{Response: &response, UpdatedStatus: updatedStatus}, nil
}

// ListForReport returns all responses on a report, newest first. Users
// may only read responses on their own reports.
func (s *ResponseService) ListForReport(act actor.Actor, reportID uuid.UUID) ([]models.ReportResponse, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		return nil, apperr.NotFound("Report not found.")
	}

	if !act.IsAdmin() && report.UserID != act.ID {
		return nil, apperr.Forbidden("Access denied. You can only view responses for your reports.")
	}

	var responses []models.ReportResponse
	err := s.db.Preload("Feedback").
		Where("report_id = ?", reportID).
		Order("created_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// AddFeedback appends the actor's comment to a response. Each user gets
// at most one feedback entry per response.
func (s *ResponseService) AddFeedback(act actor.Actor, responseID uuid.UUID, comment string) (*models.ReportResponse, error) {
	if comment == "" {
		return nil, apperr.Validation("Comment is required.")
	}

	var response models.ReportResponse
	if err := s.db.First(&response, "id = ?", responseID).Error; err != nil {
		return nil, apperr.NotFound("Response not found.")
	}

	var existing models.ResponseFeedback
	err := s.db.First(&existing, "response_id = ? AND user_id = ?", responseID, act.ID).Error
	if err == nil {
		return nil, apperr.Conflict("You have already provided feedback for this response.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	feedback := models.ResponseFeedback{
		ID:         uuid.New(),
		ResponseID: responseID,
		UserID:     act.ID,
		Comment:    comment,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to add feedback: %w", err)
	}

	return s.reload(responseID)
}

// DeleteFeedback removes the actor's feedback entry from a response.
func (s *ResponseService) DeleteFeedback(act actor.Actor, responseID uuid.UUID) error {
	var response models.ReportResponse
	if err := s.db.First(&response, "id = ?", responseID).Error; err != nil {
		return apperr.NotFound("Response not found.")
	}

	result := s.db.Where("response_id = ? AND user_id = ?", responseID, act.ID).
		Delete(&models.ResponseFeedback{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.Forbidden("You haven't submitted any feedback for this response.")
	}
	return nil
}

// Edit updates a response thread. Admins may rewrite any top-level
// message but never user feedback; users may rewrite only their own
// feedback entry, and only within the edit window of its creation.
func (s *ResponseService) Edit(act actor.Actor, responseID uuid.UUID, message string) (*models.ReportResponse, error) {
	if message == "" {
		return nil, apperr.Validation("Message is required.")
	}

	var response models.ReportResponse
	if err := s.db.First(&response, "id = ?", responseID).Error; err != nil {
		return nil, apperr.NotFound("Response not found.")
	}

	if act.IsAdmin() {
		now := time.Now()
		response.Message = message
		response.LastEdited = &now
		if err := s.db.Save(&response).Error; err != nil {
			return nil, fmt.Errorf("failed to edit response: %w", err)
		}
		return s.reload(responseID)
	}

	var feedback models.ResponseFeedback
	if err := s.db.First(&feedback, "response_id = ? AND user_id = ?", responseID, act.ID).Error; err != nil {
		return nil, apperr.Forbidden("You can only edit your own feedback.")
	}

	if time.Since(feedback.CreatedAt) > feedbackEditWindow {
		return nil, apperr.Forbidden("Feedback can only be edited within 1 hour of posting.")
	}

	feedback.Comment = message
	if err := s.db.Save(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to edit feedback: %w", err)
	}

	return s.reload(responseID)
}

// Delete removes a response and its feedback thread. Admin only at the
// route level.
func (s *ResponseService) Delete(responseID uuid.UUID) error {
	var response models.ReportResponse
	if err := s.db.First(&response, "id = ?", responseID).Error; err != nil {
		return apperr.NotFound("Response not found.")
	}

	if err := s.db.Where("response_id = ?", responseID).Delete(&models.ResponseFeedback{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&response).Error
}

func (s *ResponseService) reload(responseID uuid.UUID) (*models.ReportResponse, error) {
	var response models.ReportResponse
	if err := s.db.Preload("Feedback").First(&response, "id = ?", responseID).Error; err != nil {
		return nil, err
	}
	return &response, nil
}
