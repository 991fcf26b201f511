package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportResponse is an admin's threaded reply to a report. A report may
// carry any number of responses.
type ReportResponse struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	ReportID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"report_id"`
	ResponderID uuid.UUID          `gorm:"type:uuid;not null;index" json:"responder_id"`
	Message     string             `gorm:"type:text;not null" json:"message"`
	LastEdited  *time.Time         `json:"last_edited,omitempty"`
	CreatedAt   time.Time          `gorm:"index" json:"created_at"`
	Feedback    []ResponseFeedback `gorm:"foreignKey:ResponseID" json:"user_feedback"`
}

// ResponseFeedback is a citizen comment on an admin response. The unique
// index keeps each user to a single entry per response.
type ResponseFeedback struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResponseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_response_user" json:"response_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_response_user" json:"user_id"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ResponseFeedback) TableName() string {
	return "response_feedbacks"
}
