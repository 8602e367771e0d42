package contracts

import (
	"context"
	"mime/multipart"

	"github.com/goccy/go-json"

	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, request *requests.Register) (json.RawMessage, error)
	Logout(ctx context.Context, session *models.Session) error
	Me(ctx context.Context) (json.RawMessage, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (json.RawMessage, error)
	UploadProfilePhoto(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*responses.ProfilePhoto, error)
}

type BookingUsecase interface {
	Start(ctx context.Context) (*responses.BookingSessionStarted, error)
	FormData(ctx context.Context) (*responses.BookingFormData, error)
	SubmitPatientInfo(ctx context.Context, bookingID string, request *requests.PatientInfo) error
	SubmitDetails(ctx context.Context, bookingID string, request *requests.AppointmentDetails) (*responses.BookingDetails, error)
	CreateIntent(ctx context.Context, bookingID string) (*responses.PaymentIntent, error)
	ConfirmCard(ctx context.Context, bookingID string, request *requests.ConfirmCardPayment) (*responses.CheckoutResult, error)
	PayCash(ctx context.Context, bookingID string) (*responses.CheckoutResult, error)
}

type AppointmentUsecase interface {
	List(ctx context.Context, session *models.Session, query requests.ListQuery) (*responses.AppointmentRowPage, error)
	History(ctx context.Context, session *models.Session, query requests.ListQuery) (*responses.AppointmentRowPage, error)
	Transition(ctx context.Context, session *models.Session, appointmentID int64, target models.AppointmentStatus) error
	Delete(ctx context.Context, session *models.Session, appointmentID int64) error
}

type PaymentUsecase interface {
	CreateIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error)
	ConfirmCard(ctx context.Context, clientSecret string, request *requests.ConfirmCardPayment) (*responses.PaymentConfirmation, error)
	PayCash(ctx context.Context, request *requests.PayCash) (*responses.CheckoutResult, error)
	Refund(ctx context.Context, paymentID int64) error
	UnpaidAppointments(ctx context.Context) ([]responses.Appointment, error)
}

type ResourceUsecase interface {
	List(ctx context.Context, resource string, query requests.ListQuery) ([]json.RawMessage, *responses.Pagination, error)
	Get(ctx context.Context, resource string, id int64) (json.RawMessage, error)
	Create(ctx context.Context, resource string, payload map[string]interface{}) (json.RawMessage, error)
	Update(ctx context.Context, resource string, id int64, payload map[string]interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, resource string, id int64) error
}

type DashboardUsecase interface {
	Admin(ctx context.Context) (*responses.AdminDashboard, error)
	Doctor(ctx context.Context) (*responses.DoctorDashboard, error)
}
