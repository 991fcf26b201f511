package services

import (
	"math"
	"strings"
	"time"

	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/apperr"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/export"
	"github.com/hudumaworks/utility-backend/internal/geo"
	"github.com/hudumaworks/utility-backend/internal/models"
	"gorm.io/gorm"
)

// ReportQueryService composes role-scoped multi-criteria report queries:
// search, attribute filters, geofenced lookups and exports.
type ReportQueryService struct {
	db *gorm.DB
}

func NewReportQueryService(db *gorm.DB) *ReportQueryService {
	return &ReportQueryService{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so free-text queries match
// substrings literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type SearchParams struct {
	Query        string
	Status       string
	Priority     string
	StartDate    *time.Time
	EndDate      *time.Time
	AssignedToMe bool
	Page         int
	Limit        int
}

// Search runs a paginated, role-scoped search. Non-admin actors are always
// restricted to their own reports, whatever else the filters say.
func (s *ReportQueryService) Search(act actor.Actor, params SearchParams) (*dto.SearchReportsResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	query := s.db.Model(&models.Report{})

	if !act.IsAdmin() {
		query = query.Where("user_id = ?", act.ID)
	} else if params.AssignedToMe {
		query = query.Where("assigned_to = ?", act.ID)
	}

	if params.Query != "" {
		pattern := "%" + escapeLike(strings.ToLower(params.Query)) + "%"
		query = query.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Priority != "" {
		query = query.Where("priority = ?", params.Priority)
	}
	if params.StartDate != nil && params.EndDate != nil {
		query = query.Where("created_at >= ? AND created_at <= ?", params.StartDate, params.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var reports []models.Report
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, err
	}

	return &dto.SearchReportsResult{
		TotalReports: total,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage:  page,
		Reports:      reports,
	}, nil
}

// FilterByAttributes filters the whole report set by category, status and
// priority. Status and priority values are validated before any query runs.
func (s *ReportQueryService) FilterByAttributes(category, status, priority string) ([]models.Report, error) {
	query := s.db.Model(&models.Report{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if status != "" {
		if !models.ValidStatus(status) {
			return nil, apperr.Validation("Invalid status value.")
		}
		query = query.Where("status = ?", status)
	}
	if priority != "" {
		if !models.ValidPriority(priority) {
			return nil, apperr.Validation("Invalid priority value.")
		}
		query = query.Where("priority = ?", priority)
	}

	var reports []models.Report
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Nearby returns reports inside the spherical cap of radiusKm around the
// given point. A bounding-box predicate narrows candidates on the indexed
// latitude/longitude columns; the exact haversine check runs on the rest.
func (s *ReportQueryService) Nearby(latitude, longitude, radiusKm float64) ([]models.Report, error) {
	if !geo.ValidLatitude(latitude) || !geo.ValidLongitude(longitude) {
		return nil, apperr.Validation("Latitude and longitude are required.")
	}
	if radiusKm <= 0 {
		radiusKm = 10
	}

	box := geo.CapBoundingBox(latitude, longitude, radiusKm)

	var candidates []models.Report
	err := s.db.
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Order("created_at DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	reports := make([]models.Report, 0, len(candidates))
	for _, r := range candidates {
		if geo.DistanceKm(latitude, longitude, r.Latitude, r.Longitude) <= radiusKm {
			reports = append(reports, r)
		}
	}
	return reports, nil
}

type ExportParams struct {
	Format    string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Export renders the filtered report set as CSV or PDF. Non-admin actors
// are scoped to their own reports; an empty result set is an error by
// contract.
func (s *ReportQueryService) Export(act actor.Actor, params ExportParams) (*ExportResult, error) {
	if params.Format != "csv" && params.Format != "pdf" {
		return nil, apperr.Validation("Invalid format. Use csv or pdf.")
	}

	query := s.db.Model(&models.Report{})
	if !act.IsAdmin() {
		query = query.Where("user_id = ?", act.ID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.StartDate != nil && params.EndDate != nil {
		query = query.Where("created_at >= ? AND created_at <= ?", params.StartDate, params.EndDate)
	}

	var reports []models.Report
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, apperr.NotFound("No reports found for the given filters.")
	}

	if params.Format == "csv" {
		data, err := export.CSV(reports)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Data: data, ContentType: "text/csv", Filename: "reports.csv"}, nil
	}

	data, err := export.PDF(reports)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Data: data, ContentType: "application/pdf", Filename: "reports.pdf"}, nil
}
