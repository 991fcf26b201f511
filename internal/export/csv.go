// Package export renders ordered report lists to downloadable documents.
// It is purely a formatting layer; callers decide filtering and ordering.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/hudumaworks/utility-backend/internal/models"
)

// CSV renders reports with the fixed {id, title, description, status,
// created_at} projection.
func CSV(reports []models.Report) ([]byte, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	headers := []string{"ID", "Title", "Description", "Status", "Created At"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, r := range reports {
		record := []string{
			r.ID.String(),
			r.Title,
			r.Description,
			r.Status,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buffer.Bytes(), nil
}
