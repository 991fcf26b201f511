package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/apperr"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validApplication() *dto.SubmitApplicationRequest {
	tag := uuid.New().String()[:8]
	return &dto.SubmitApplicationRequest{
		FullName:         "Jane Wanjiku",
		IDNumber:         "ID-" + tag,
		IDAttachment:     "uploads/id-" + tag + ".pdf",
		ContactAddress:   "P.O. Box 123, Nairobi",
		PINNumber:        "PIN-" + tag,
		PINAttachment:    "uploads/pin-" + tag + ".pdf",
		PhoneNumber:      "+2547" + tag,
		Email:            fmt.Sprintf("applicant-%s@example.com", tag),
		Block:            "B12",
		RoadStreet:       "Moi Avenue",
		PlotNumber:       "45",
		OwnerName:        "Jane Wanjiku",
		SizeRequired:     "3/4 inch",
		ConsumerCategory: "Domestic",
		SanitationMethod: "M",
	}
}

func TestApplicationService_Submit(t *testing.T) {
	env := newTestEnv(t)
	svc := NewApplicationService(env.db, env.audit)

	t.Run("stores a pending application", func(t *testing.T) {
		app, err := svc.Submit(validApplication())
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationPending, app.Status)
	})

	t.Run("missing attachments are rejected", func(t *testing.T) {
		req := validApplication()
		req.IDAttachment = ""
		_, err := svc.Submit(req)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		req := validApplication()
		req.Email = "not-an-email"
		_, err := svc.Submit(req)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("duplicate details conflict", func(t *testing.T) {
		req := validApplication()
		_, err := svc.Submit(req)
		require.NoError(t, err)

		dup := validApplication()
		dup.Email = req.Email
		_, err = svc.Submit(dup)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	})
}

func TestApplicationService_Approve(t *testing.T) {
	env := newTestEnv(t)
	svc := NewApplicationService(env.db, env.audit)
	admin := createTestUser(t, env.db, models.RoleAdmin)

	app, err := svc.Submit(validApplication())
	require.NoError(t, err)

	t.Run("creates a consumer account with a temporary password", func(t *testing.T) {
		result, err := svc.Approve(actor.Admin(admin.ID), app.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, result.TemporaryPassword)
		assert.Equal(t, app.Email, result.User.Email)
		assert.Equal(t, models.RoleUser, result.User.Role)

		// the stored hash matches the returned password
		err = bcrypt.CompareHashAndPassword([]byte(result.User.Password), []byte(result.TemporaryPassword))
		assert.NoError(t, err)

		var reloaded models.Application
		require.NoError(t, env.db.First(&reloaded, "id = ?", app.ID).Error)
		assert.Equal(t, models.ApplicationApproved, reloaded.Status)
	})

	t.Run("second approval conflicts", func(t *testing.T) {
		_, err := svc.Approve(actor.Admin(admin.ID), app.ID)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	})

	t.Run("unknown application is not found", func(t *testing.T) {
		_, err := svc.Approve(actor.Admin(admin.ID), uuid.New())
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestApplicationService_Reject(t *testing.T) {
	env := newTestEnv(t)
	svc := NewApplicationService(env.db, env.audit)
	admin := createTestUser(t, env.db, models.RoleAdmin)

	app, err := svc.Submit(validApplication())
	require.NoError(t, err)

	t.Run("reason is required", func(t *testing.T) {
		_, err := svc.Reject(actor.Admin(admin.ID), app.ID, "")
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("records the rejection", func(t *testing.T) {
		rejection, err := svc.Reject(actor.Admin(admin.ID), app.ID, "Plot outside the supply area")
		require.NoError(t, err)
		assert.Equal(t, app.ID, rejection.ApplicationID)
		assert.Equal(t, admin.ID, rejection.RejectedBy)

		var reloaded models.Application
		require.NoError(t, env.db.First(&reloaded, "id = ?", app.ID).Error)
		assert.Equal(t, models.ApplicationRejected, reloaded.Status)
	})

	t.Run("second rejection conflicts", func(t *testing.T) {
		_, err := svc.Reject(actor.Admin(admin.ID), app.ID, "Again")
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	})
}

func TestApplicationService_Update(t *testing.T) {
	env := newTestEnv(t)
	svc := NewApplicationService(env.db, env.audit)

	app, err := svc.Submit(validApplication())
	require.NoError(t, err)

	updated, err := svc.Update(app.ID, &dto.UpdateApplicationRequest{
		ContactAddress: "P.O. Box 456, Nairobi",
		PlotNumber:     "46",
	})
	require.NoError(t, err)
	assert.Equal(t, "P.O. Box 456, Nairobi", updated.ContactAddress)
	assert.Equal(t, "46", updated.PlotNumber)
	// untouched fields survive
	assert.Equal(t, app.FullName, updated.FullName)
}

func TestApplicationService_GetStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := NewApplicationService(env.db, env.audit)

	app, err := svc.Submit(validApplication())
	require.NoError(t, err)

	status, err := svc.GetStatus(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, status)

	_, err = svc.GetStatus(uuid.New())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
