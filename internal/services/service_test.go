package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Application{},
		&models.Rejection{},
		&models.Report{},
		&models.ReportResponse{},
		&models.ResponseFeedback{},
		&models.AuditLog{},
		&models.RefreshToken{},
	)
	require.NoError(t, err)

	return db
}

type testEnv struct {
	db    *gorm.DB
	audit *AuditService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)
	return &testEnv{db: db, audit: NewAuditService(db)}
}

func createTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	tag := uuid.New().String()[:8]
	user := &models.User{
		ID:          uuid.New(),
		FullName:    "Test User " + tag,
		IDNumber:    "ID-" + tag,
		PhoneNumber: "+2547" + tag,
		Email:       fmt.Sprintf("user-%s@example.com", tag),
		Password:    "hashed",
		Role:        role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestReport(t *testing.T, db *gorm.DB, userID uuid.UUID, status string) *models.Report {
	report := &models.Report{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Burst pipe on Moi Avenue",
		Description: "Water flooding the road near the junction",
		Category:    "Water Leakage",
		Longitude:   36.8219,
		Latitude:    -1.2921,
		Status:      status,
		Priority:    models.PriorityMedium,
		Attachments: []string{},
		Reopen:      models.ReopenRequest{Status: models.ReopenNone},
	}
	require.NoError(t, db.Create(report).Error)
	return report
}
