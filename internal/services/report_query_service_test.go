package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/apperr"
	"github.com/hudumaworks/utility-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportQueryService_Search(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportQueryService(env.db)

	user := createTestUser(t, env.db, models.RoleUser)
	other := createTestUser(t, env.db, models.RoleUser)
	admin := createTestUser(t, env.db, models.RoleAdmin)

	for i := 0; i < 3; i++ {
		createTestReport(t, env.db, user.ID, models.StatusPending)
	}
	createTestReport(t, env.db, other.ID, models.StatusResolved)

	t.Run("non-admin is always scoped to own reports", func(t *testing.T) {
		result, err := svc.Search(actor.User(user.ID), SearchParams{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, result.TotalReports)
		for _, r := range result.Reports {
			assert.Equal(t, user.ID, r.UserID)
		}
	})

	t.Run("admin sees everything", func(t *testing.T) {
		result, err := svc.Search(actor.Admin(admin.ID), SearchParams{})
		require.NoError(t, err)
		assert.EqualValues(t, 4, result.TotalReports)
	})

	t.Run("text match is case-insensitive over title and description", func(t *testing.T) {
		result, err := svc.Search(actor.Admin(admin.ID), SearchParams{Query: "BURST PIPE"})
		require.NoError(t, err)
		assert.NotZero(t, result.TotalReports)
	})

	t.Run("pagination reports total pages", func(t *testing.T) {
		result, err := svc.Search(actor.Admin(admin.ID), SearchParams{Page: 1, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalPages)
		assert.Len(t, result.Reports, 3)

		result, err = svc.Search(actor.Admin(admin.ID), SearchParams{Page: 2, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 2, result.CurrentPage)
		assert.Len(t, result.Reports, 1)
	})

	t.Run("status filter applies", func(t *testing.T) {
		result, err := svc.Search(actor.Admin(admin.ID), SearchParams{Status: models.StatusResolved})
		require.NoError(t, err)
		assert.EqualValues(t, 1, result.TotalReports)
	})

	t.Run("wildcard characters match literally", func(t *testing.T) {
		report := createTestReport(t, env.db, user.ID, models.StatusPending)
		report.Title = "Pressure down 50% on Kenyatta Ave"
		require.NoError(t, env.db.Save(report).Error)

		result, err := svc.Search(actor.Admin(admin.ID), SearchParams{Query: "50%"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, result.TotalReports)

		result, err = svc.Search(actor.Admin(admin.ID), SearchParams{Query: "%"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, result.TotalReports)

		result, err = svc.Search(actor.Admin(admin.ID), SearchParams{Query: "_"})
		require.NoError(t, err)
		assert.Zero(t, result.TotalReports)
	})

	t.Run("assigned-to-me narrows the admin view", func(t *testing.T) {
		report := createTestReport(t, env.db, user.ID, models.StatusPending)
		report.AssignedTo = &admin.ID
		require.NoError(t, env.db.Save(report).Error)

		result, err := svc.Search(actor.Admin(admin.ID), SearchParams{AssignedToMe: true})
		require.NoError(t, err)
		assert.EqualValues(t, 1, result.TotalReports)
	})
}

func TestReportQueryService_FilterByAttributes(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportQueryService(env.db)

	user := createTestUser(t, env.db, models.RoleUser)
	createTestReport(t, env.db, user.ID, models.StatusPending)
	createTestReport(t, env.db, user.ID, models.StatusResolved)

	t.Run("filters by status", func(t *testing.T) {
		reports, err := svc.FilterByAttributes("", models.StatusResolved, "")
		require.NoError(t, err)
		assert.Len(t, reports, 1)
	})

	t.Run("invalid status fails before querying", func(t *testing.T) {
		_, err := svc.FilterByAttributes("", "Bogus", "")
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("invalid priority fails before querying", func(t *testing.T) {
		_, err := svc.FilterByAttributes("", "", "Critical")
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		reports, err := svc.FilterByAttributes("", "", "")
		require.NoError(t, err)
		assert.Len(t, reports, 2)
	})
}

func TestReportQueryService_Nearby(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportQueryService(env.db)
	user := createTestUser(t, env.db, models.RoleUser)

	// Nairobi CBD
	atPoint := createTestReport(t, env.db, user.ID, models.StatusPending)

	// Mombasa, ~440 km away
	far := &models.Report{
		ID:          uuid.New(),
		UserID:      user.ID,
		Title:       "Coastal outage",
		Description: "No supply in Nyali",
		Category:    "Supply Outage",
		Longitude:   39.6682,
		Latitude:    -4.0435,
		Status:      models.StatusPending,
		Priority:    models.PriorityMedium,
		Attachments: []string{},
	}
	require.NoError(t, env.db.Create(far).Error)

	t.Run("includes a report at the query point", func(t *testing.T) {
		reports, err := svc.Nearby(-1.2921, 36.8219, 5)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, atPoint.ID, reports[0].ID)
	})

	t.Run("excludes reports beyond the radius", func(t *testing.T) {
		reports, err := svc.Nearby(-1.2921, 36.8219, 100)
		require.NoError(t, err)
		for _, r := range reports {
			assert.NotEqual(t, far.ID, r.ID)
		}
	})

	t.Run("large radius picks up both", func(t *testing.T) {
		reports, err := svc.Nearby(-1.2921, 36.8219, 1000)
		require.NoError(t, err)
		assert.Len(t, reports, 2)
	})

	t.Run("invalid coordinates are rejected", func(t *testing.T) {
		_, err := svc.Nearby(95, 36.8219, 10)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})
}

func TestReportQueryService_Export(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportQueryService(env.db)
	user := createTestUser(t, env.db, models.RoleUser)
	other := createTestUser(t, env.db, models.RoleUser)
	admin := createTestUser(t, env.db, models.RoleAdmin)

	createTestReport(t, env.db, user.ID, models.StatusPending)
	createTestReport(t, env.db, other.ID, models.StatusResolved)

	t.Run("unsupported format is rejected", func(t *testing.T) {
		_, err := svc.Export(actor.User(user.ID), ExportParams{Format: "xml"})
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("csv export scopes non-admins to their own reports", func(t *testing.T) {
		result, err := svc.Export(actor.User(user.ID), ExportParams{Format: "csv"})
		require.NoError(t, err)
		assert.Equal(t, "text/csv", result.ContentType)

		content := string(result.Data)
		assert.Contains(t, content, "Burst pipe on Moi Avenue")
		// header plus exactly one data row
		assert.Equal(t, 2, strings.Count(strings.TrimSpace(content), "\n")+1)
	})

	t.Run("admin export covers all reports", func(t *testing.T) {
		result, err := svc.Export(actor.Admin(admin.ID), ExportParams{Format: "csv"})
		require.NoError(t, err)
		content := strings.TrimSpace(string(result.Data))
		assert.Equal(t, 3, len(strings.Split(content, "\n")))
	})

	t.Run("pdf export produces a PDF document", func(t *testing.T) {
		result, err := svc.Export(actor.Admin(admin.ID), ExportParams{Format: "pdf"})
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", result.ContentType)
		assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
	})

	t.Run("empty result set is an error", func(t *testing.T) {
		_, err := svc.Export(actor.User(user.ID), ExportParams{Format: "csv", Status: models.StatusResolved})
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}
