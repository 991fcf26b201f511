package services

import (
	"fmt"
	"time"

	"github.com/hudumaworks/utility-backend/internal/models"
	"gorm.io/gorm"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int64  `json:"count"`
}

type DashboardReportStats struct {
	TotalReports        int64           `json:"total_reports"`
	ReportsByStatus     []StatusCount   `json:"reports_by_status"`
	ReportsByPriority   []PriorityCount `json:"reports_by_priority"`
	AverageResponseTime string          `json:"average_response_time"`
}

// DashboardService aggregates report statistics for the admin panel.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// ReportStats returns report totals, status/priority breakdowns, and the
// average delay between a report and its first admin response.
func (s *DashboardService) ReportStats() (*DashboardReportStats, error) {
	stats := &DashboardReportStats{}

	if err := s.db.Model(&models.Report{}).Count(&stats.TotalReports).Error; err != nil {
		return nil, err
	}

	err := s.db.Model(&models.Report{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&stats.ReportsByStatus).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Report{}).
		Select("priority, COUNT(*) as count").
		Group("priority").
		Scan(&stats.ReportsByPriority).Error
	if err != nil {
		return nil, err
	}

	// Date arithmetic differs across drivers, so the latency average is
	// computed here rather than in SQL.
	var pairs []struct {
		ResponseAt time.Time
		ReportAt   time.Time
	}
	err = s.db.Model(&models.ReportResponse{}).
		Select("report_responses.created_at AS response_at, reports.created_at AS report_at").
		Joins("JOIN reports ON reports.id = report_responses.report_id").
		Scan(&pairs).Error
	if err != nil {
		return nil, err
	}

	if len(pairs) == 0 {
		stats.AverageResponseTime = "No responses yet"
		return stats, nil
	}

	var total time.Duration
	for _, p := range pairs {
		total += p.ResponseAt.Sub(p.ReportAt)
	}
	avg := total / time.Duration(len(pairs))
	stats.AverageResponseTime = fmt.Sprintf("%.2f minutes", avg.Minutes())

	return stats, nil
}
