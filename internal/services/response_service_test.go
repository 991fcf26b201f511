package services

import (
	"testing"
	"time"

	"github.com/hudumaworks/utility-backend/internal/actor"
	"github.com/hudumaworks/utility-backend/internal/apperr"
	"github.com/hudumaworks/utility-backend/internal/dto"
	"github.com/hudumaworks/utility-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseService(t *testing.T) (*ResponseService, *testEnv) {
	env := newTestEnv(t)
	return NewResponseService(env.db, env.audit), env
}

func TestResponseService_Respond(t *testing.T) {
	svc, env := newResponseService(t)
	user := createTestUser(t, env.db, models.RoleUser)
	admin := createTestUser(t, env.db, models.RoleAdmin)
	report := createTestReport(t, env.db, user.ID, models.StatusPending)

	t.Run("records a response without touching status", func(t *testing.T) {
		result, err := svc.Respond(actor.Admin(admin.ID), report.ID, &dto.AdminRespondRequest{
			Message: "We are looking into it",
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, result.UpdatedStatus)
		assert.Equal(t, admin.ID, result.Response.ResponderID)
	})

	t.Run("optionally updates the report status", func(t *testing.T) {
		result, err := svc.Respond(actor.Admin(admin.ID), report.ID, &dto.AdminRespondRequest{
			Message: "Crew on site",
			Status:  models.StatusInProgress,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusInProgress, result.UpdatedStatus)

		var reloaded models.Report
		require.NoError(t, env.db.First(&reloaded, "id = ?", report.ID).Error)
		assert.Equal(t, models.StatusInProgress, reloaded.Status)
	})

	t.Run("message is required", func(t *testing.T) {
		_, err := svc.Respond(actor.Admin(admin.ID), report.ID, &dto.AdminRespondRequest{})
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := svc.Respond(actor.Admin(admin.ID), report.ID, &dto.AdminRespondRequest{
			Message: "Done",
			Status:  "Closed",
		})
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})
}

func TestResponseService_ListForReport(t *testing.T) {
	svc, env := newResponseService(t)
	owner := createTestUser(t, env.db, models.RoleUser)
	other := createTestUser(t, env.db, models.RoleUser)
	admin := createTestUser(t, env.db, models.RoleAdmin)
	report := createTestReport(t, env.db, owner.ID, models.StatusPending)

	_, err := svc.Respond(actor.Admin(admin.ID), report.ID, &dto.AdminRespondRequest{Message: "First response"})
	require.NoError(t, err)

	t.Run("owner can list", func(t *testing.T) {
		responses, err := svc.ListForReport(actor.User(owner.ID), report.ID)
		require.NoError(t, err)
		assert.Len(t, responses, 1)
	})

	t.Run("other users are denied", func(t *testing.T) {
		_, err := svc.ListForReport(actor.User(other.ID), report.ID)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	t.Run("admin can list any report", func(t *testing.T) {
		responses, err := svc.ListForReport(actor.Admin(admin.ID), report.ID)
		require.NoError(t, err)
		assert.Len(t, responses, 1)
	})
}

func TestResponseService_Feedback(t *testing.T) {
	svc, env := newResponseService(t)
	user := createTestUser(t, env.db, models.RoleUser)
	admin := createTestUser(t, env.db, models.RoleAdmin)
	report := createTestReport(t, env.db, user.ID, models.StatusResolved)

	result, err := svc.Respond(actor.Admin(admin.ID), report.ID, &dto.AdminRespondRequest{Message: "Fixed"})
	require.NoError(t, err)
	responseID := result.Response.ID

	t.Run("adds feedback once", func(t *testing.T) {
		response, err := svc.AddFeedback(actor.User(user.ID), responseID, "Confirmed, water is back")
		require.NoError(t, err)
		assert.Len(t, response.Feedback, 1)
	})

	t.Run("second feedback from the same user conflicts", func(t *testing.T) {
		_, err := svc.AddFeedback(actor.User(user.ID), responseID, "Another comment")
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	})

	t.Run("a different user may still comment", func(t *testing.T) {
		neighbour := createTestUser(t, env.db, models.RoleUser)
		response, err := svc.AddFeedback(actor.User(neighbour.ID), responseID, "Same here")
		require.NoError(t, err)
		assert.Len(t, response.Feedback, 2)
	})

	t.Run("empty comment is rejected", func(t *testing.T) {
		_, err := svc.AddFeedback(actor.User(user.ID), responseID, "")
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("deleting without feedback is forbidden", func(t *testing.T) {
		stranger := createTestUser(t, env.db, models.RoleUser)
		err := svc.DeleteFeedback(actor.User(stranger.ID), responseID)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	t.Run("owner deletes own feedback", func(t *testing.T) {
		err := svc.DeleteFeedback(actor.User(user.ID), responseID)
		require.NoError(t, err)

		var count int64
		env.db.Model(&models.ResponseFeedback{}).
			Where("response_id = ? AND user_id = ?", responseID, user.ID).
			Count(&count)
		assert.Zero(t, count)
	})
}

func TestResponseService_Edit(t *testing.T) {
	svc, env := newResponseService(t)
	user := createTestUser(t, env.db, models.RoleUser)
	admin := createTestUser(t, env.db, models.RoleAdmin)
	report := createTestReport(t, env.db, user.ID, models.StatusResolved)

	result, err := svc.Respond(actor.Admin(admin.ID), report.ID, &dto.AdminRespondRequest{Message: "Original message"})
	require.NoError(t, err)
	responseID := result.Response.ID

	t.Run("admin edits the response message", func(t *testing.T) {
		response, err := svc.Edit(actor.Admin(admin.ID), responseID, "Corrected message")
		require.NoError(t, err)
		assert.Equal(t, "Corrected message", response.Message)
		assert.NotNil(t, response.LastEdited)
	})

	t.Run("user edits own feedback inside the window", func(t *testing.T) {
		_, err := svc.AddFeedback(actor.User(user.ID), responseID, "Initial comment")
		require.NoError(t, err)

		response, err := svc.Edit(actor.User(user.ID), responseID, "Revised comment")
		require.NoError(t, err)
		require.Len(t, response.Feedback, 1)
		assert.Equal(t, "Revised comment", response.Feedback[0].Comment)
		// admin message untouched
		assert.Equal(t, "Corrected message", response.Message)
	})

	t.Run("edit outside the window is forbidden", func(t *testing.T) {
		stale := time.Now().Add(-2 * time.Hour)
		require.NoError(t, env.db.Model(&models.ResponseFeedback{}).
			Where("response_id = ? AND user_id = ?", responseID, user.ID).
			Update("created_at", stale).Error)

		_, err := svc.Edit(actor.User(user.ID), responseID, "Too late")
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	t.Run("user without feedback cannot edit", func(t *testing.T) {
		stranger := createTestUser(t, env.db, models.RoleUser)
		_, err := svc.Edit(actor.User(stranger.ID), responseID, "Not mine")
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})
}

func TestResponseService_Delete(t *testing.T) {
	svc, env := newResponseService(t)
	user := createTestUser(t, env.db, models.RoleUser)
	admin := createTestUser(t, env.db, models.RoleAdmin)
	report := createTestReport(t, env.db, user.ID, models.StatusResolved)

	result, err := svc.Respond(actor.Admin(admin.ID), report.ID, &dto.AdminRespondRequest{Message: "To be removed"})
	require.NoError(t, err)
	_, err = svc.AddFeedback(actor.User(user.ID), result.Response.ID, "A comment")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(result.Response.ID))

	var responses, feedback int64
	env.db.Model(&models.ReportResponse{}).Count(&responses)
	env.db.Model(&models.ResponseFeedback{}).Count(&feedback)
	assert.Zero(t, responses)
	assert.Zero(t, feedback)
}
