package dto

import "github.com/hudumaworks/utility-backend/internal/models"

type AdminRespondRequest struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

type AdminRespondResult struct {
	Response      *models.ReportResponse `json:"response"`
	UpdatedStatus string                 `json:"updated_status"`
}

type FeedbackRequest struct {
	Comment string `json:"comment"`
}

type EditResponseRequest struct {
	Message string `json:"message"`
}
