package dto

import (
	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/models"
)

type Point struct {
	// Coordinates is a [longitude, latitude] pair, GeoJSON order.
	Coordinates []float64 `json:"coordinates"`
}

type SubmitReportRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    Point    `json:"location"`
	Priority    string   `json:"priority,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AssignReportRequest struct {
	AssignedTo uuid.UUID `json:"assigned_to"`
}

type ReopenRequestBody struct {
	Reason string `json:"reason"`
}

type ReopenReviewRequest struct {
	// Action is "approve" or "reject".
	Action        string `json:"action"`
	AdminResponse string `json:"admin_response,omitempty"`
}

type SearchReportsResult struct {
	TotalReports int64           `json:"total_reports"`
	TotalPages   int             `json:"total_pages"`
	CurrentPage  int             `json:"current_page"`
	Reports      []models.Report `json:"reports"`
}

type ReportStatusResponse struct {
	Status string `json:"status"`
}
