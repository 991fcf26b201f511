package dto

import (
	"time"

	"github.com/hudumaworks/utility-backend/internal/models"
)

type SubmitApplicationRequest struct {
	FullName         string     `json:"full_name" validate:"required"`
	IDNumber         string     `json:"id_number" validate:"required"`
	IDAttachment     string     `json:"id_attachment" validate:"required"`
	ContactAddress   string     `json:"contact_address" validate:"required"`
	PINNumber        string     `json:"pin_number" validate:"required"`
	PINAttachment    string     `json:"pin_attachment" validate:"required"`
	PhoneNumber      string     `json:"phone_number" validate:"required"`
	Email            string     `json:"email" validate:"required,email"`
	Block            string     `json:"block,omitempty"`
	RoadStreet       string     `json:"road_street,omitempty"`
	PlotNumber       string     `json:"plot_number,omitempty"`
	OwnerName        string     `json:"owner_name,omitempty"`
	SizeRequired     string     `json:"size_required,omitempty"`
	DateRequired     *time.Time `json:"date_required,omitempty"`
	ConsumerCategory string     `json:"consumer_category,omitempty"`
	SanitationMethod string     `json:"sanitation_method,omitempty" validate:"omitempty,oneof=M P N U"`
}

type UpdateApplicationRequest struct {
	FullName         string     `json:"full_name,omitempty"`
	ContactAddress   string     `json:"contact_address,omitempty"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	Block            string     `json:"block,omitempty"`
	RoadStreet       string     `json:"road_street,omitempty"`
	PlotNumber       string     `json:"plot_number,omitempty"`
	OwnerName        string     `json:"owner_name,omitempty"`
	SizeRequired     string     `json:"size_required,omitempty"`
	DateRequired     *time.Time `json:"date_required,omitempty"`
	ConsumerCategory string     `json:"consumer_category,omitempty"`
	SanitationMethod string     `json:"sanitation_method,omitempty" validate:"omitempty,oneof=M P N U"`
}

type RejectApplicationRequest struct {
	Reason string `json:"reason"`
}

type ApproveApplicationResult struct {
	User *models.User `json:"user"`
	// TemporaryPassword is returned exactly once so the admin can hand the
	// credentials to the applicant.
	TemporaryPassword string `json:"temporary_password"`
}
