package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is an append-only record of an administrative state-changing
// action. Rows are never updated or deleted by the application.
type AuditLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Action      string         `gorm:"not null;size:100;index" json:"action"`
	PerformedBy uuid.UUID      `gorm:"type:uuid;not null;index" json:"performed_by"`
	Details     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"details"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}
