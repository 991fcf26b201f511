package models

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses.
const (
	ApplicationPending  = "Pending"
	ApplicationApproved = "Approved"
	ApplicationRejected = "Rejected"
)

// Application is a citizen's request for a new water connection. Approval
// provisions a User account from the applicant details.
type Application struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName         string     `gorm:"not null;size:255" json:"full_name"`
	IDNumber         string     `gorm:"not null;size:50;uniqueIndex" json:"id_number"`
	IDAttachment     string     `gorm:"not null;size:500" json:"id_attachment"`
	ContactAddress   string     `gorm:"not null;size:500" json:"contact_address"`
	PINNumber        string     `gorm:"not null;size:50" json:"pin_number"`
	PINAttachment    string     `gorm:"not null;size:500" json:"pin_attachment"`
	PhoneNumber      string     `gorm:"not null;size:30;uniqueIndex" json:"phone_number"`
	Email            string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Block            string     `gorm:"size:50" json:"block,omitempty"`
	RoadStreet       string     `gorm:"size:255" json:"road_street,omitempty"`
	PlotNumber       string     `gorm:"size:50" json:"plot_number,omitempty"`
	OwnerName        string     `gorm:"size:255" json:"owner_name,omitempty"`
	SizeRequired     string     `gorm:"size:50" json:"size_required,omitempty"`
	DateRequired     *time.Time `json:"date_required,omitempty"`
	ConsumerCategory string     `gorm:"size:50" json:"consumer_category,omitempty"`
	SanitationMethod string     `gorm:"size:1" json:"sanitation_method,omitempty"`
	Status           string     `gorm:"not null;default:'Pending';size:20;index" json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
