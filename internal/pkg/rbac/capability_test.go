package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/constvars"
)

func TestAllowed(t *testing.T) {
	t.Run("manage implies crud", func(t *testing.T) {
		assert.True(t, Allowed(constvars.RoleAdmin, constvars.ResourceHospitals, ActionManage))
		assert.True(t, Allowed(constvars.RoleAdmin, constvars.ResourceHospitals, ActionRead))
		assert.True(t, Allowed(constvars.RoleAdmin, constvars.ResourceHospitals, ActionEdit))
	})

	t.Run("read does not imply manage", func(t *testing.T) {
		assert.True(t, Allowed(constvars.RoleAdmin, constvars.ResourcePayments, ActionRead))
		assert.False(t, Allowed(constvars.RoleAdmin, constvars.ResourcePayments, ActionEdit))
	})

	t.Run("non admin has no resource management", func(t *testing.T) {
		assert.False(t, Allowed(constvars.RoleDoctor, constvars.ResourceHospitals, ActionRead))
		assert.False(t, Allowed(constvars.RolePatient, constvars.ResourceUsers, ActionManage))
	})

	t.Run("patient browses the directory", func(t *testing.T) {
		assert.True(t, Allowed(constvars.RolePatient, constvars.ResourceDoctors, ActionRead))
		assert.True(t, Allowed(constvars.RolePatient, constvars.ResourceSpecializations, ActionRead))
		assert.True(t, Allowed(constvars.RoleDoctor, constvars.ResourceDoctors, ActionRead))
		assert.False(t, Allowed(constvars.RolePatient, constvars.ResourceDoctors, ActionCreate))
	})

	t.Run("patient submits feedback but cannot manage it", func(t *testing.T) {
		assert.True(t, Allowed(constvars.RolePatient, constvars.ResourceFeedbacks, ActionCreate))
		assert.False(t, Allowed(constvars.RolePatient, constvars.ResourceFeedbacks, ActionEdit))
		assert.False(t, Allowed(constvars.RolePatient, constvars.ResourceFeedbacks, ActionDelete))
		assert.False(t, Allowed(constvars.RoleDoctor, constvars.ResourceFeedbacks, ActionCreate))
	})

	t.Run("manage implies create", func(t *testing.T) {
		assert.True(t, Allowed(constvars.RoleAdmin, constvars.ResourceHospitals, ActionCreate))
	})

	t.Run("unknown role gets nothing", func(t *testing.T) {
		assert.False(t, Allowed("GUEST", constvars.ResourceDoctors, ActionRead))
	})
}

func TestAppointmentActions(t *testing.T) {
	t.Run("admin always edits and deletes", func(t *testing.T) {
		for _, status := range []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed, models.StatusCanceled, models.StatusCompleted} {
			assert.Equal(t, []string{ActionEdit, ActionDelete}, AppointmentActions(constvars.RoleAdmin, status))
		}
	})

	t.Run("doctor on pending", func(t *testing.T) {
		assert.Equal(t, []string{ActionConfirm, ActionCancel}, AppointmentActions(constvars.RoleDoctor, models.StatusPending))
	})

	t.Run("doctor on confirmed", func(t *testing.T) {
		assert.Equal(t, []string{ActionComplete}, AppointmentActions(constvars.RoleDoctor, models.StatusConfirmed))
	})

	t.Run("patient cancels while active", func(t *testing.T) {
		assert.Equal(t, []string{ActionCancel}, AppointmentActions(constvars.RolePatient, models.StatusPending))
		assert.Equal(t, []string{ActionCancel}, AppointmentActions(constvars.RolePatient, models.StatusConfirmed))
	})

	t.Run("terminal statuses offer nothing", func(t *testing.T) {
		assert.Empty(t, AppointmentActions(constvars.RolePatient, models.StatusCompleted))
		assert.Empty(t, AppointmentActions(constvars.RoleDoctor, models.StatusCanceled))
		assert.Empty(t, AppointmentActions(constvars.RolePatient, models.StatusCanceled))
	})
}

func TestMayTransition(t *testing.T) {
	t.Run("doctor confirms pending", func(t *testing.T) {
		assert.True(t, MayTransition(constvars.RoleDoctor, models.StatusPending, models.StatusConfirmed))
	})

	t.Run("doctor completes confirmed", func(t *testing.T) {
		assert.True(t, MayTransition(constvars.RoleDoctor, models.StatusConfirmed, models.StatusCompleted))
	})

	t.Run("doctor cannot complete pending", func(t *testing.T) {
		assert.False(t, MayTransition(constvars.RoleDoctor, models.StatusPending, models.StatusCompleted))
	})

	t.Run("patient never confirms", func(t *testing.T) {
		assert.False(t, MayTransition(constvars.RolePatient, models.StatusPending, models.StatusConfirmed))
	})

	t.Run("patient cancels confirmed", func(t *testing.T) {
		assert.True(t, MayTransition(constvars.RolePatient, models.StatusConfirmed, models.StatusCanceled))
	})

	t.Run("no transition out of terminal", func(t *testing.T) {
		assert.False(t, MayTransition(constvars.RoleDoctor, models.StatusCompleted, models.StatusCanceled))
		assert.False(t, MayTransition(constvars.RoleAdmin, models.StatusCanceled, models.StatusConfirmed))
	})
}
