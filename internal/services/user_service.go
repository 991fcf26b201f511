package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/apperr"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/models"
	"gorm.io/gorm"
)

// UserService handles profile reads and edits. Identity fields (idNumber,
// email, password, role) are immutable through this path.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Get returns the user's profile.
func (s *UserService) Get(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperr.NotFound("User not found")
	}
	return &user, nil
}

// UpdateProfile applies the permitted subset of profile edits.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperr.NotFound("User not found")
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.ContactAddress != "" {
		user.ContactAddress = req.ContactAddress
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Block != "" {
		user.Block = req.Block
	}
	if req.RoadStreet != "" {
		user.RoadStreet = req.RoadStreet
	}
	if req.PlotNumber != "" {
		user.PlotNumber = req.PlotNumber
	}
	if req.OwnerName != "" {
		user.OwnerName = req.OwnerName
	}
	if req.SanitationMethod != "" {
		user.SanitationMethod = req.SanitationMethod
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}
