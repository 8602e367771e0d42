package contracts

import (
	"context"

	"github.com/goccy/go-json"

	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
)

type AuthCoreClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.CoreToken, error)
	Register(ctx context.Context, request *requests.Register) (json.RawMessage, error)
	Me(ctx context.Context) (json.RawMessage, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (json.RawMessage, error)
}

type PatientCoreClient interface {
	GetMyPatient(ctx context.Context) (*responses.CorePatient, error)
	CreatePatient(ctx context.Context, request *requests.PatientInfo) (*responses.CorePatient, error)
}

type CreateAppointmentParams struct {
	PatientID         int64
	DoctorID          int64
	AppointmentTypeID int64
	DateTime          string
	Note              string
}

type AppointmentCoreClient interface {
	Create(ctx context.Context, params CreateAppointmentParams) (*responses.CreatedAppointment, error)
	Get(ctx context.Context, appointmentID int64) (*responses.Appointment, error)
	List(ctx context.Context, scope string, query requests.ListQuery) (*responses.AppointmentPage, error)
	Transition(ctx context.Context, appointmentID int64, transitionPath string) error
	Delete(ctx context.Context, appointmentID int64) error
}

type ResourceCoreClient interface {
	List(ctx context.Context, path, filterParam string, query requests.ListQuery) (*responses.CorePagedResponse, error)
	Get(ctx context.Context, path string, id int64) (json.RawMessage, error)
	Create(ctx context.Context, path string, payload map[string]interface{}) (json.RawMessage, error)
	Update(ctx context.Context, path string, id int64, payload map[string]interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, path string, id int64) error
}

type PaymentCoreClient interface {
	CreateIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error)
	PayCash(ctx context.Context, appointmentID int64, amount float64) error
	Refund(ctx context.Context, paymentID int64) error
	GetPayment(ctx context.Context, paymentID int64) (*responses.Payment, error)
	UnpaidAppointments(ctx context.Context) ([]responses.Appointment, error)
}

type DashboardCoreClient interface {
	Counts(ctx context.Context) (*responses.DashboardCounts, error)
	Revenue(ctx context.Context) (json.RawMessage, error)
	Stats(ctx context.Context) (json.RawMessage, error)
	UpcomingAppointments(ctx context.Context) (json.RawMessage, error)
	WeeklyAppointments(ctx context.Context) (json.RawMessage, error)
	RecentActivity(ctx context.Context) (json.RawMessage, error)
	DoctorDashboard(ctx context.Context) (*responses.DoctorDashboard, error)
}
