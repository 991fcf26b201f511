package dto

import (
	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/models"
)

type LoginRequest struct {
	// Identifier is the account email or phone number.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	}
}

type UpdateProfileRequest struct {
	FullName         string `json:"full_name,omitempty"`
	ContactAddress   string `json:"contact_address,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	Block            string `json:"block,omitempty"`
	RoadStreet       string `json:"road_street,omitempty"`
	PlotNumber       string `json:"plot_number,omitempty"`
	OwnerName        string `json:"owner_name,omitempty"`
	SanitationMethod string `json:"sanitation_method,omitempty"`
}
