package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/rbac"
	"finddoctor-service/internal/pkg/utils"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	Appointments contracts.AppointmentCoreClient
	Log          *zap.Logger
}

func NewAppointmentUsecase(appointments contracts.AppointmentCoreClient, logger *zap.Logger) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			Appointments: appointments,
			Log:          logger,
		}
	})
	return appointmentUsecaseInstance
}

// List returns the page of appointments the role is scoped to, each row
// annotated with the actions the caller may take on it.
func (u *appointmentUsecase) List(ctx context.Context, session *models.Session, query requests.ListQuery) (*responses.AppointmentRowPage, error) {
	scope := constvars.CoreAPIPathAppointmentsMy
	switch session.Role {
	case constvars.RoleAdmin:
		scope = constvars.CoreAPIPathAppointments
	case constvars.RoleDoctor:
		scope = constvars.CoreAPIPathAppointmentsDoctor
	}
	return u.fetchRows(ctx, session, scope, query)
}

func (u *appointmentUsecase) History(ctx context.Context, session *models.Session, query requests.ListQuery) (*responses.AppointmentRowPage, error) {
	return u.fetchRows(ctx, session, constvars.CoreAPIPathHistory, query)
}

// fetchRows pulls one page and steps back once when a stale page index lands
// past the last page, which happens after the only row on a page is removed.
func (u *appointmentUsecase) fetchRows(ctx context.Context, session *models.Session, scope string, query requests.ListQuery) (*responses.AppointmentRowPage, error) {
	page, err := u.Appointments.List(ctx, scope, query)
	if err != nil {
		return nil, err
	}
	if len(page.Content) == 0 && query.Page > 0 {
		query.Page--
		page, err = u.Appointments.List(ctx, scope, query)
		if err != nil {
			return nil, err
		}
	}

	rows := make([]responses.AppointmentRow, 0, len(page.Content))
	for _, appointment := range page.Content {
		rows = append(rows, responses.AppointmentRow{
			Appointment: appointment,
			Actions:     rbac.AppointmentActions(session.Role, models.AppointmentStatus(appointment.Status)),
		})
	}
	return &responses.AppointmentRowPage{Content: rows, Page: page.Page}, nil
}

// Transition moves an appointment to the target status after checking the
// role, the status graph and, for completion, the appointment time. Nothing
// is sent upstream when a check fails.
func (u *appointmentUsecase) Transition(ctx context.Context, session *models.Session, appointmentID int64, target models.AppointmentStatus) error {
	requestID := utils.RequestIDFromContext(ctx)

	if !target.Valid() {
		return exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidStatus,
			fmt.Sprintf("unknown appointment status %q", target))
	}
	transitionPath, ok := models.TransitionPath(target)
	if !ok {
		return exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidStatus,
			fmt.Sprintf("status %q is not a transition target", target))
	}

	appointment, err := u.Appointments.Get(ctx, appointmentID)
	if err != nil {
		return err
	}
	from := models.AppointmentStatus(appointment.Status)

	if !rbac.MayTransition(session.Role, from, target) {
		return exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientTransitionNotAllowed,
			fmt.Sprintf("role %s cannot move appointment %d from %s to %s", session.Role, appointmentID, from, target))
	}

	if target == models.StatusCompleted {
		appointmentTime, err := utils.ParseDateTime(appointment.DateTime)
		if err != nil {
			return err
		}
		if appointmentTime.After(time.Now()) {
			return exceptions.WrapWithoutError(constvars.StatusConflict, constvars.ErrClientCompleteBeforeDateTime,
				fmt.Sprintf("appointment %d is scheduled for %s", appointmentID, appointment.DateTime))
		}
	}

	if err := u.Appointments.Transition(ctx, appointmentID, transitionPath); err != nil {
		return err
	}

	u.Log.Info("appointmentUsecase.Transition succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("from", string(from)),
		zap.String("to", string(target)),
	)
	return nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, session *models.Session, appointmentID int64) error {
	if !rbac.Allowed(session.Role, constvars.ResourceAppointments, rbac.ActionDelete) {
		return exceptions.ErrRoleNotAllowed(nil)
	}
	return u.Appointments.Delete(ctx, appointmentID)
}
