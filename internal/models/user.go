package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a utility consumer provisioned from an approved connection
// application. Admins are regular users with Role set to "admin".
type User struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FullName         string         `gorm:"not null;size:255" json:"full_name"`
	IDNumber         string         `gorm:"not null;size:50;uniqueIndex" json:"id_number"`
	IDAttachment     string         `gorm:"size:500" json:"-"`
	ContactAddress   string         `gorm:"size:500" json:"contact_address"`
	PINNumber        string         `gorm:"size:50" json:"-"`
	PINAttachment    string         `gorm:"size:500" json:"-"`
	PhoneNumber      string         `gorm:"not null;size:30;uniqueIndex" json:"phone_number"`
	Email            string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password         string         `gorm:"not null" json:"-"`
	Block            string         `gorm:"size:50" json:"block,omitempty"`
	RoadStreet       string         `gorm:"size:255" json:"road_street,omitempty"`
	PlotNumber       string         `gorm:"size:50" json:"plot_number,omitempty"`
	OwnerName        string         `gorm:"size:255" json:"owner_name,omitempty"`
	SizeRequired     string         `gorm:"size:50" json:"size_required,omitempty"`
	DateRequired     *time.Time     `json:"date_required,omitempty"`
	ConsumerCategory string         `gorm:"size:50" json:"consumer_category,omitempty"`
	SanitationMethod string         `gorm:"size:1" json:"sanitation_method,omitempty"`
	Role             string         `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
