package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReports() []models.Report {
	return []models.Report{
		{
			ID:          uuid.New(),
			Title:       "Burst pipe",
			Description: "Water flooding the road, near the \"old\" market",
			Status:      models.StatusPending,
			CreatedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          uuid.New(),
			Title:       "Low pressure",
			Description: "Trickle on upper floors",
			Status:      models.StatusResolved,
			CreatedAt:   time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC),
		},
	}
}

func TestCSV(t *testing.T) {
	reports := sampleReports()

	data, err := CSV(reports)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Title", "Description", "Status", "Created At"}, records[0])
	assert.Equal(t, reports[0].ID.String(), records[1][0])
	assert.Equal(t, "Burst pipe", records[1][1])
	// quotes in the description survive the round trip
	assert.Contains(t, records[1][2], `"old"`)
	assert.Equal(t, "2026-03-14 09:30:00", records[1][4])
}

func TestCSV_Empty(t *testing.T) {
	data, err := CSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestPDF(t *testing.T) {
	data, err := PDF(sampleReports())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.Greater(t, len(data), 500)
}
