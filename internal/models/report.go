package models

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// Report priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Reopen request statuses.
const (
	ReopenNone     = "None"
	ReopenPending  = "Pending"
	ReopenApproved = "Approved"
	ReopenRejected = "Rejected"
)

// ValidStatus reports whether s is one of the three report statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusResolved
}

// ValidPriority reports whether p is one of the three report priorities.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ReopenRequest tracks at most one in-flight reopen negotiation per report.
type ReopenRequest struct {
	Status        string     `gorm:"size:10;not null;default:'None'" json:"status"`
	Reason        string     `gorm:"size:1000" json:"reason,omitempty"`
	AdminResponse string     `gorm:"size:1000" json:"admin_response,omitempty"`
	RequestedAt   *time.Time `json:"requested_at,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
}

// Report is a citizen-filed issue with a geographic point and a
// Pending -> In Progress -> Resolved lifecycle.
type Report struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string        `gorm:"not null;size:255" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Category    string        `gorm:"not null;size:100;index" json:"category"`
	Longitude   float64       `gorm:"type:decimal(11,8);not null;index" json:"longitude"`
	Latitude    float64       `gorm:"type:decimal(10,8);not null;index" json:"latitude"`
	Status      string        `gorm:"not null;default:'Pending';size:20;index" json:"status"`
	Priority    string        `gorm:"not null;default:'Medium';size:10;index" json:"priority"`
	Attachments []string      `gorm:"serializer:json" json:"attachments"`
	AssignedTo  *uuid.UUID    `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	Reopen      ReopenRequest `gorm:"embedded;embeddedPrefix:reopen_" json:"reopen_request"`
	CreatedAt   time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	User        User          `gorm:"foreignKey:UserID" json:"-"`
}
