package models

import (
	"time"

	"github.com/google/uuid"
)

// Rejection records why a connection application was turned down.
type Rejection struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index" json:"application_id"`
	Reason        string    `gorm:"not null;size:1000" json:"reason"`
	RejectedBy    uuid.UUID `gorm:"type:uuid;not null" json:"rejected_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
