package booking

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/config"
	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
)

type bookingRepoFake struct {
	bookings map[string]*models.BookingSession
}

func newBookingRepoFake() *bookingRepoFake {
	return &bookingRepoFake{bookings: map[string]*models.BookingSession{}}
}

func (f *bookingRepoFake) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *bookingRepoFake) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *bookingRepoFake) Delete(ctx context.Context, key string) error       { return nil }
func (f *bookingRepoFake) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return nil
}
func (f *bookingRepoFake) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return nil, exceptions.ErrInvalidSession(nil)
}
func (f *bookingRepoFake) DeleteSession(ctx context.Context, sessionID string) error { return nil }
func (f *bookingRepoFake) SaveBooking(ctx context.Context, booking *models.BookingSession, ttl time.Duration) error {
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}
func (f *bookingRepoFake) GetBooking(ctx context.Context, bookingID string) (*models.BookingSession, error) {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	copied := *booking
	return &copied, nil
}
func (f *bookingRepoFake) DeleteBooking(ctx context.Context, bookingID string) error {
	delete(f.bookings, bookingID)
	return nil
}

type patientClientFake struct {
	getErr      error
	patient     *responses.CorePatient
	createCalls int
}

func (f *patientClientFake) GetMyPatient(ctx context.Context) (*responses.CorePatient, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.patient, nil
}
func (f *patientClientFake) CreatePatient(ctx context.Context, request *requests.PatientInfo) (*responses.CorePatient, error) {
	f.createCalls++
	return &responses.CorePatient{ID: 7, Firstname: request.Firstname, Lastname: request.Lastname}, nil
}

type appointmentClientFake struct {
	createCalls int
	created     responses.CreatedAppointment
}

func (f *appointmentClientFake) Create(ctx context.Context, params contracts.CreateAppointmentParams) (*responses.CreatedAppointment, error) {
	f.createCalls++
	created := f.created
	return &created, nil
}
func (f *appointmentClientFake) Get(ctx context.Context, appointmentID int64) (*responses.Appointment, error) {
	return nil, exceptions.ErrCoreAPIResourceNotFound(nil, constvars.ResourceAppointments)
}
func (f *appointmentClientFake) List(ctx context.Context, scope string, query requests.ListQuery) (*responses.AppointmentPage, error) {
	return &responses.AppointmentPage{}, nil
}
func (f *appointmentClientFake) Transition(ctx context.Context, appointmentID int64, transitionPath string) error {
	return nil
}
func (f *appointmentClientFake) Delete(ctx context.Context, appointmentID int64) error { return nil }

type paymentClientFake struct {
	intentCalls   int
	lastIntentReq *requests.CreatePaymentIntent
	payCashCalls  int
}

func (f *paymentClientFake) CreateIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	f.intentCalls++
	f.lastIntentReq = request
	return &responses.PaymentIntent{ClientSecret: "pi_1_secret_abc"}, nil
}
func (f *paymentClientFake) PayCash(ctx context.Context, appointmentID int64, amount float64) error {
	f.payCashCalls++
	return nil
}
func (f *paymentClientFake) Refund(ctx context.Context, paymentID int64) error { return nil }
func (f *paymentClientFake) GetPayment(ctx context.Context, paymentID int64) (*responses.Payment, error) {
	return nil, exceptions.ErrCoreAPIResourceNotFound(nil, constvars.ResourcePayments)
}
func (f *paymentClientFake) UnpaidAppointments(ctx context.Context) ([]responses.Appointment, error) {
	return nil, nil
}

type resourceClientFake struct{}

func (f *resourceClientFake) List(ctx context.Context, path, filterParam string, query requests.ListQuery) (*responses.CorePagedResponse, error) {
	rows := []string{
		`{"id":2,"name":"Zoe Carter","hospitalName":"West"}`,
		`{"id":1,"name":"Adam Ray","hospitalName":"East"}`,
	}
	content := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		content = append(content, json.RawMessage(row))
	}
	return &responses.CorePagedResponse{Content: content}, nil
}
func (f *resourceClientFake) Get(ctx context.Context, path string, id int64) (json.RawMessage, error) {
	return nil, nil
}
func (f *resourceClientFake) Create(ctx context.Context, path string, payload map[string]interface{}) (json.RawMessage, error) {
	return nil, nil
}
func (f *resourceClientFake) Update(ctx context.Context, path string, id int64, payload map[string]interface{}) (json.RawMessage, error) {
	return nil, nil
}
func (f *resourceClientFake) Delete(ctx context.Context, path string, id int64) error { return nil }

type gatewayFake struct {
	status string
}

func (f *gatewayFake) ConfirmPaymentIntent(ctx context.Context, clientSecret, paymentMethodID string) (*responses.PaymentConfirmation, error) {
	return &responses.PaymentConfirmation{IntentID: "pi_1", Status: f.status}, nil
}

type publisherFake struct {
	published []interface{}
}

func (f *publisherFake) Publish(ctx context.Context, body interface{}) error {
	f.published = append(f.published, body)
	return nil
}

type bookingFixture struct {
	usecase      *bookingUsecase
	repo         *bookingRepoFake
	patients     *patientClientFake
	appointments *appointmentClientFake
	payments     *paymentClientFake
	gateway      *gatewayFake
	publisher    *publisherFake
}

func newBookingFixture() *bookingFixture {
	fixture := &bookingFixture{
		repo:         newBookingRepoFake(),
		patients:     &patientClientFake{patient: &responses.CorePatient{ID: 3}},
		appointments: &appointmentClientFake{created: responses.CreatedAppointment{ID: 42, Amount: 129.99}},
		payments:     &paymentClientFake{},
		gateway:      &gatewayFake{status: "succeeded"},
		publisher:    &publisherFake{},
	}
	fixture.usecase = &bookingUsecase{
		Bookings:     fixture.repo,
		Patients:     fixture.patients,
		Appointments: fixture.appointments,
		Payments:     fixture.payments,
		Resources:    &resourceClientFake{},
		Gateway:      fixture.gateway,
		Publisher:    fixture.publisher,
		InternalConfig: &config.InternalConfig{
			App: config.App{BookingSessionTTLInMinute: 30},
		},
		Log: zap.NewNop(),
	}
	return fixture
}

func futureDateTime() string {
	return time.Now().Add(48 * time.Hour).Format("2006-01-02T15:04")
}

func detailsRequest() *requests.AppointmentDetails {
	return &requests.AppointmentDetails{
		DoctorID:          1,
		AppointmentTypeID: 2,
		DateTime:          futureDateTime(),
	}
}

func startedBooking(t *testing.T, fixture *bookingFixture) string {
	t.Helper()
	started, err := fixture.usecase.Start(context.Background())
	require.NoError(t, err)
	err = fixture.usecase.SubmitPatientInfo(context.Background(), started.BookingID, &requests.PatientInfo{
		Firstname: "Jane", Lastname: "Doe",
	})
	require.NoError(t, err)
	return started.BookingID
}

func TestFormDataSortsOptions(t *testing.T) {
	fixture := newBookingFixture()

	formData, err := fixture.usecase.FormData(context.Background())

	require.NoError(t, err)
	require.Len(t, formData.Doctors, 2)
	assert.Equal(t, "Adam Ray", formData.Doctors[0].Name)
	assert.Equal(t, "Zoe Carter", formData.Doctors[1].Name)
}

func TestSubmitDetails(t *testing.T) {
	t.Run("creates appointment and converts amount to cents", func(t *testing.T) {
		fixture := newBookingFixture()
		bookingID := startedBooking(t, fixture)

		details, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(42), details.AppointmentID)
		assert.Equal(t, int64(12999), details.AmountInCents)
		assert.Equal(t, 1, fixture.appointments.createCalls)
	})

	t.Run("repeated submit does not double book", func(t *testing.T) {
		fixture := newBookingFixture()
		bookingID := startedBooking(t, fixture)

		_, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())
		require.NoError(t, err)
		details, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(42), details.AppointmentID)
		assert.Equal(t, 1, fixture.appointments.createCalls)
	})

	t.Run("rejects past date without creating anything", func(t *testing.T) {
		fixture := newBookingFixture()
		bookingID := startedBooking(t, fixture)

		request := detailsRequest()
		request.DateTime = time.Now().Add(-time.Hour).Format("2006-01-02T15:04")
		_, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, request)

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientDateTimeInPast, customErr.ClientMessage)
		assert.Equal(t, 0, fixture.appointments.createCalls)
	})

	t.Run("creates patient record only on not found", func(t *testing.T) {
		fixture := newBookingFixture()
		fixture.patients.patient = nil
		fixture.patients.getErr = exceptions.ErrCoreAPIResourceNotFound(nil, constvars.ResourcePatients)
		bookingID := startedBooking(t, fixture)

		_, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, fixture.patients.createCalls)
	})

	t.Run("transient patient lookup failure propagates", func(t *testing.T) {
		fixture := newBookingFixture()
		fixture.patients.getErr = exceptions.ErrCoreAPIGetResource(nil, constvars.ResourcePatients)
		bookingID := startedBooking(t, fixture)

		_, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())

		require.Error(t, err)
		assert.Equal(t, 0, fixture.patients.createCalls)
		assert.Equal(t, 0, fixture.appointments.createCalls)
	})
}

func TestCreateIntent(t *testing.T) {
	t.Run("requires completed details step", func(t *testing.T) {
		fixture := newBookingFixture()
		bookingID := startedBooking(t, fixture)

		_, err := fixture.usecase.CreateIntent(context.Background(), bookingID)

		require.Error(t, err)
		assert.Equal(t, 0, fixture.payments.intentCalls)
	})

	t.Run("reuses existing intent", func(t *testing.T) {
		fixture := newBookingFixture()
		bookingID := startedBooking(t, fixture)
		_, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())
		require.NoError(t, err)

		first, err := fixture.usecase.CreateIntent(context.Background(), bookingID)
		require.NoError(t, err)
		second, err := fixture.usecase.CreateIntent(context.Background(), bookingID)
		require.NoError(t, err)

		assert.Equal(t, first.ClientSecret, second.ClientSecret)
		assert.Equal(t, 1, fixture.payments.intentCalls)
		assert.Equal(t, int64(12999), fixture.payments.lastIntentReq.AmountInCents)
	})
}

func TestConfirmCard(t *testing.T) {
	t.Run("publishes event and completes booking", func(t *testing.T) {
		fixture := newBookingFixture()
		bookingID := startedBooking(t, fixture)
		_, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())
		require.NoError(t, err)
		_, err = fixture.usecase.CreateIntent(context.Background(), bookingID)
		require.NoError(t, err)

		result, err := fixture.usecase.ConfirmCard(context.Background(), bookingID, &requests.ConfirmCardPayment{PaymentMethodID: "pm_1"})

		require.NoError(t, err)
		assert.Equal(t, int64(42), result.AppointmentID)
		assert.Equal(t, "CARD", result.PaymentMethod)
		require.Len(t, fixture.publisher.published, 1)
		event, ok := fixture.publisher.published[0].(models.BookingConfirmedEvent)
		require.True(t, ok)
		assert.Equal(t, int64(42), event.AppointmentID)
	})

	t.Run("rejects confirmation before intent", func(t *testing.T) {
		fixture := newBookingFixture()
		bookingID := startedBooking(t, fixture)
		_, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())
		require.NoError(t, err)

		_, err = fixture.usecase.ConfirmCard(context.Background(), bookingID, &requests.ConfirmCardPayment{PaymentMethodID: "pm_1"})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientPaymentNotInitialized, customErr.ClientMessage)
	})

	t.Run("fails when processor does not succeed", func(t *testing.T) {
		fixture := newBookingFixture()
		fixture.gateway.status = "requires_action"
		bookingID := startedBooking(t, fixture)
		_, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())
		require.NoError(t, err)
		_, err = fixture.usecase.CreateIntent(context.Background(), bookingID)
		require.NoError(t, err)

		_, err = fixture.usecase.ConfirmCard(context.Background(), bookingID, &requests.ConfirmCardPayment{PaymentMethodID: "pm_1"})

		require.Error(t, err)
		assert.Empty(t, fixture.publisher.published)
	})
}

func TestPayCash(t *testing.T) {
	t.Run("records payment once even when retried", func(t *testing.T) {
		fixture := newBookingFixture()
		bookingID := startedBooking(t, fixture)
		_, err := fixture.usecase.SubmitDetails(context.Background(), bookingID, detailsRequest())
		require.NoError(t, err)

		first, err := fixture.usecase.PayCash(context.Background(), bookingID)
		require.NoError(t, err)
		second, err := fixture.usecase.PayCash(context.Background(), bookingID)
		require.NoError(t, err)

		assert.Equal(t, first.AppointmentID, second.AppointmentID)
		assert.Equal(t, 1, fixture.payments.payCashCalls)
		assert.Len(t, fixture.publisher.published, 1)
	})

	t.Run("requires details step", func(t *testing.T) {
		fixture := newBookingFixture()
		bookingID := startedBooking(t, fixture)

		_, err := fixture.usecase.PayCash(context.Background(), bookingID)

		require.Error(t, err)
		assert.Equal(t, 0, fixture.payments.payCashCalls)
	})

	t.Run("unknown booking id", func(t *testing.T) {
		fixture := newBookingFixture()

		_, err := fixture.usecase.PayCash(context.Background(), "missing")

		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})
}
