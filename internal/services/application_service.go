package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/apperr"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ApplicationService handles water-connection applications and the user
// provisioning that follows approval.
type ApplicationService struct {
	db       *gorm.DB
	audit    *AuditService
	validate *validator.Validate
}

func NewApplicationService(db *gorm.DB, audit *AuditService) *ApplicationService {
	return &ApplicationService{
		db:       db,
		audit:    audit,
		validate: validator.New(),
	}
}

// Submit stores a new application in Pending state.
func (s *ApplicationService) Submit(req *dto.SubmitApplicationRequest) (*models.Application, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.Validation("ID and PIN attachments and all applicant details are required.")
	}

	var existing models.Application
	err := s.db.First(&existing, "id_number = ? OR phone_number = ? OR email = ?",
		req.IDNumber, req.PhoneNumber, req.Email).Error
	if err == nil {
		return nil, apperr.Conflict("An application with these details already exists.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	app := models.Application{
		ID:               uuid.New(),
		FullName:         req.FullName,
		IDNumber:         req.IDNumber,
		IDAttachment:     req.IDAttachment,
		ContactAddress:   req.ContactAddress,
		PINNumber:        req.PINNumber,
		PINAttachment:    req.PINAttachment,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		Block:            req.Block,
		RoadStreet:       req.RoadStreet,
		PlotNumber:       req.PlotNumber,
		OwnerName:        req.OwnerName,
		SizeRequired:     req.SizeRequired,
		DateRequired:     req.DateRequired,
		ConsumerCategory: req.ConsumerCategory,
		SanitationMethod: req.SanitationMethod,
		Status:           models.ApplicationPending,
	}

	if err := s.db.Create(&app).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &app, nil
}

// GetStatus returns the review status of an application.
func (s *ApplicationService) GetStatus(id uuid.UUID) (string, error) {
	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		return "", apperr.NotFound("Application not found")
	}
	return app.Status, nil
}

// Get returns a single application.
func (s *ApplicationService) Get(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("Application not found")
	}
	return &app, nil
}

// List returns all applications, newest first.
func (s *ApplicationService) List() ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Approve marks an application Approved and provisions a consumer account
// from it. The generated temporary password is returned exactly once.
func (s *ApplicationService) Approve(act actor.Actor, id uuid.UUID) (*dto.ApproveApplicationResult, error) {
	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("Application not found")
	}

	if app.Status == models.ApplicationApproved {
		return nil, apperr.Conflict("Application already approved")
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:               uuid.New(),
		FullName:         app.FullName,
		IDNumber:         app.IDNumber,
		IDAttachment:     app.IDAttachment,
		ContactAddress:   app.ContactAddress,
		PINNumber:        app.PINNumber,
		PINAttachment:    app.PINAttachment,
		PhoneNumber:      app.PhoneNumber,
		Email:            app.Email,
		Password:         string(hash),
		Block:            app.Block,
		RoadStreet:       app.RoadStreet,
		PlotNumber:       app.PlotNumber,
		OwnerName:        app.OwnerName,
		SizeRequired:     app.SizeRequired,
		DateRequired:     app.DateRequired,
		ConsumerCategory: app.ConsumerCategory,
		SanitationMethod: app.SanitationMethod,
		Role:             models.RoleUser,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		app.Status = models.ApplicationApproved
		if err := tx.Save(&app).Error; err != nil {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to approve application: %w", err)
	}

	s.audit.Record(ActionApplicationApproved, act.ID, map[string]interface{}{
		"application_id": app.ID,
		"user_id":        user.ID,
	})

	return &dto.ApproveApplicationResult{User: &user, TemporaryPassword: tempPassword}, nil
}

// Reject marks an application Rejected and records the reason.
func (s *ApplicationService) Reject(act actor.Actor, id uuid.UUID, reason string) (*models.Rejection, error) {
	if reason == "" {
		return nil, apperr.Validation("A rejection reason is required.")
	}

	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("Application not found")
	}

	if app.Status == models.ApplicationRejected {
		return nil, apperr.Conflict("Application already rejected")
	}

	rejection := models.Rejection{
		ID:            uuid.New(),
		ApplicationID: app.ID,
		Reason:        reason,
		RejectedBy:    act.ID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		app.Status = models.ApplicationRejected
		if err := tx.Save(&app).Error; err != nil {
			return err
		}
		return tx.Create(&rejection).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reject application: %w", err)
	}

	s.audit.Record(ActionApplicationRejected, act.ID, map[string]interface{}{
		"application_id": app.ID,
		"reason":         reason,
	})

	return &rejection, nil
}

// Update applies partial edits to a pending application.
func (s *ApplicationService) Update(id uuid.UUID, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.Validation("Invalid application update.")
	}

	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("Application not found")
	}

	if req.FullName != "" {
		app.FullName = req.FullName
	}
	if req.ContactAddress != "" {
		app.ContactAddress = req.ContactAddress
	}
	if req.PhoneNumber != "" {
		app.PhoneNumber = req.PhoneNumber
	}
	if req.Block != "" {
		app.Block = req.Block
	}
	if req.RoadStreet != "" {
		app.RoadStreet = req.RoadStreet
	}
	if req.PlotNumber != "" {
		app.PlotNumber = req.PlotNumber
	}
	if req.OwnerName != "" {
		app.OwnerName = req.OwnerName
	}
	if req.SizeRequired != "" {
		app.SizeRequired = req.SizeRequired
	}
	if req.DateRequired != nil {
		app.DateRequired = req.DateRequired
	}
	if req.ConsumerCategory != "" {
		app.ConsumerCategory = req.ConsumerCategory
	}
	if req.SanitationMethod != "" {
		app.SanitationMethod = req.SanitationMethod
	}

	if err := s.db.Save(&app).Error; err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return &app, nil
}

// Delete removes an application.
func (s *ApplicationService) Delete(id uuid.UUID) error {
	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		return apperr.NotFound("Application not found")
	}
	return s.db.Delete(&app).Error
}

func generateTempPassword() (string, error) {
	raw := make([]byte, 12)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(raw)[:16], nil
}
