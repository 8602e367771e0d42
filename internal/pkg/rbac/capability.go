package rbac

import (
	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/constvars"
)

// Action names mirror what the UI renders as buttons.
const (
	ActionEdit     = "edit"
	ActionDelete   = "delete"
	ActionConfirm  = "confirm"
	ActionCancel   = "cancel"
	ActionComplete = "complete"
	ActionRefund   = "refund"
	ActionManage   = "manage"
	ActionCreate   = "create"
	ActionRead     = "read"
)

type capability struct {
	Role     string
	Resource string
	Action   string
}

// The capability table replaces the per-page role checks the old frontend
// scattered around: one lookup instead of re-encoding the rules in every
// component. The core API remains the authority, this only decides what the
// service is willing to relay.
var table = map[capability]bool{
	{constvars.RoleAdmin, constvars.ResourceDoctors, ActionManage}:          true,
	{constvars.RoleAdmin, constvars.ResourcePatients, ActionManage}:         true,
	{constvars.RoleAdmin, constvars.ResourceHospitals, ActionManage}:        true,
	{constvars.RoleAdmin, constvars.ResourceSpecializations, ActionManage}:  true,
	{constvars.RoleAdmin, constvars.ResourceUsers, ActionManage}:            true,
	{constvars.RoleAdmin, constvars.ResourceFeedbacks, ActionManage}:        true,
	{constvars.RoleAdmin, constvars.ResourceAppointmentTypes, ActionManage}: true,
	{constvars.RoleAdmin, constvars.ResourceRoles, ActionManage}:            true,
	{constvars.RoleAdmin, constvars.ResourcePayments, ActionRead}:           true,
	{constvars.RoleAdmin, constvars.ResourcePayments, ActionRefund}:         true,
	{constvars.RoleAdmin, constvars.ResourceAppointments, ActionEdit}:       true,
	{constvars.RoleAdmin, constvars.ResourceAppointments, ActionDelete}:     true,
	{constvars.RoleAdmin, constvars.ResourceAppointments, ActionRead}:       true,
	{constvars.RoleDoctor, constvars.ResourceAppointments, ActionRead}:      true,
	{constvars.RolePatient, constvars.ResourceAppointments, ActionRead}:     true,

	// Patient-facing pages: browsing the doctor directory and submitting
	// feedback after an appointment. Create on feedbacks stops well short of
	// manage; patients never edit or delete what they submitted.
	{constvars.RolePatient, constvars.ResourceDoctors, ActionRead}:         true,
	{constvars.RoleDoctor, constvars.ResourceDoctors, ActionRead}:          true,
	{constvars.RolePatient, constvars.ResourceSpecializations, ActionRead}: true,
	{constvars.RoleDoctor, constvars.ResourceSpecializations, ActionRead}:  true,
	{constvars.RolePatient, constvars.ResourceFeedbacks, ActionCreate}:     true,
}

func Allowed(role, resource, action string) bool {
	if table[capability{role, resource, action}] {
		return true
	}
	// Manage implies every CRUD action on the resource.
	return table[capability{role, resource, ActionManage}]
}

// AppointmentActions returns exactly the transition buttons a role sees for an
// appointment in the given status. Terminal statuses yield nothing beyond the
// admin's edit/delete.
func AppointmentActions(role string, status models.AppointmentStatus) []string {
	switch role {
	case constvars.RoleAdmin:
		return []string{ActionEdit, ActionDelete}
	case constvars.RoleDoctor:
		switch status {
		case models.StatusPending:
			return []string{ActionConfirm, ActionCancel}
		case models.StatusConfirmed:
			return []string{ActionComplete}
		}
	case constvars.RolePatient:
		if status == models.StatusPending || status == models.StatusConfirmed {
			return []string{ActionCancel}
		}
	}
	return nil
}

// MayTransition reports whether the role is allowed to move an appointment
// from the given status to the target status.
func MayTransition(role string, from, to models.AppointmentStatus) bool {
	if !models.CanTransition(from, to) {
		return false
	}
	for _, action := range AppointmentActions(role, from) {
		switch action {
		case ActionConfirm:
			if to == models.StatusConfirmed {
				return true
			}
		case ActionCancel:
			if to == models.StatusCanceled {
				return true
			}
		case ActionComplete:
			if to == models.StatusCompleted {
				return true
			}
		}
	}
	return false
}
