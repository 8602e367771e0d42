package booking

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/config"
	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/app/services/resources"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	Bookings       contracts.RedisRepository
	Patients       contracts.PatientCoreClient
	Appointments   contracts.AppointmentCoreClient
	Payments       contracts.PaymentCoreClient
	Resources      contracts.ResourceCoreClient
	Gateway        contracts.PaymentGatewayService
	Publisher      contracts.MessagePublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewBookingUsecase(
	bookings contracts.RedisRepository,
	patients contracts.PatientCoreClient,
	appointments contracts.AppointmentCoreClient,
	payments contracts.PaymentCoreClient,
	resourceClient contracts.ResourceCoreClient,
	gateway contracts.PaymentGatewayService,
	publisher contracts.MessagePublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			Bookings:       bookings,
			Patients:       patients,
			Appointments:   appointments,
			Payments:       payments,
			Resources:      resourceClient,
			Gateway:        gateway,
			Publisher:      publisher,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return bookingUsecaseInstance
}

func (u *bookingUsecase) bookingTTL() time.Duration {
	return time.Duration(u.InternalConfig.App.BookingSessionTTLInMinute) * time.Minute
}

// Start opens a booking session. All form state lives server side under the
// returned booking ID, so a client skipping ahead finds nothing to pay for.
func (u *bookingUsecase) Start(ctx context.Context) (*responses.BookingSessionStarted, error) {
	requestID := utils.RequestIDFromContext(ctx)

	bookingSession := &models.BookingSession{
		ID:   utils.GenerateBookingID(),
		Step: models.BookingStepPatientInfo,
	}
	if err := u.Bookings.SaveBooking(ctx, bookingSession, u.bookingTTL()); err != nil {
		return nil, err
	}

	u.Log.Info("bookingUsecase.Start session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingSession.ID),
	)
	return &responses.BookingSessionStarted{BookingID: bookingSession.ID}, nil
}

// FormData returns the doctor and appointment-type options the booking form
// renders, sorted by name.
func (u *bookingUsecase) FormData(ctx context.Context) (*responses.BookingFormData, error) {
	optionsQuery := requests.ListQuery{Page: 0, Size: constvars.BookingDoctorsSize}

	doctorDescriptor, _ := resources.Lookup(constvars.ResourceDoctors)
	doctorPage, err := u.Resources.List(ctx, doctorDescriptor.Path, "", optionsQuery)
	if err != nil {
		return nil, err
	}
	doctors := make([]responses.DoctorOption, 0, len(doctorPage.Content))
	for _, row := range doctorPage.Content {
		var option responses.DoctorOption
		if err := json.Unmarshal(row, &option); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		doctors = append(doctors, option)
	}

	typeDescriptor, _ := resources.Lookup(constvars.ResourceAppointmentTypes)
	typePage, err := u.Resources.List(ctx, typeDescriptor.Path, "", optionsQuery)
	if err != nil {
		return nil, err
	}
	appointmentTypes := make([]responses.AppointmentTypeOption, 0, len(typePage.Content))
	for _, row := range typePage.Content {
		var option responses.AppointmentTypeOption
		if err := json.Unmarshal(row, &option); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		appointmentTypes = append(appointmentTypes, option)
	}

	sort.Slice(doctors, func(i, j int) bool {
		return strings.ToLower(doctors[i].Name) < strings.ToLower(doctors[j].Name)
	})
	sort.Slice(appointmentTypes, func(i, j int) bool {
		return strings.ToLower(appointmentTypes[i].Name) < strings.ToLower(appointmentTypes[j].Name)
	})

	return &responses.BookingFormData{
		Doctors:          doctors,
		AppointmentTypes: appointmentTypes,
	}, nil
}

func (u *bookingUsecase) SubmitPatientInfo(ctx context.Context, bookingID string, request *requests.PatientInfo) error {
	bookingSession, err := u.Bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	bookingSession.PatientInfo = *request
	bookingSession.Step = models.BookingStepDetails
	return u.Bookings.SaveBooking(ctx, bookingSession, u.bookingTTL())
}

// SubmitDetails creates the appointment on the core API. This is the single
// point where the booking flow issues the create call, so retries of later
// steps can never double book.
func (u *bookingUsecase) SubmitDetails(ctx context.Context, bookingID string, request *requests.AppointmentDetails) (*responses.BookingDetails, error) {
	requestID := utils.RequestIDFromContext(ctx)

	bookingSession, err := u.Bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if bookingSession.AppointmentID != 0 {
		return &responses.BookingDetails{
			AppointmentID: bookingSession.AppointmentID,
			AmountInCents: bookingSession.AmountInCents,
		}, nil
	}

	appointmentTime, err := utils.ParseDateTime(request.DateTime)
	if err != nil {
		return nil, err
	}
	if appointmentTime.Before(time.Now()) {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientDateTimeInPast,
			fmt.Sprintf("requested appointment time %s has already passed", request.DateTime))
	}

	patient, err := u.resolvePatient(ctx, bookingSession)
	if err != nil {
		return nil, err
	}

	created, err := u.Appointments.Create(ctx, contracts.CreateAppointmentParams{
		PatientID:         patient.ID,
		DoctorID:          request.DoctorID,
		AppointmentTypeID: request.AppointmentTypeID,
		DateTime:          request.DateTime,
		Note:              request.Note,
	})
	if err != nil {
		return nil, err
	}
	if created.ID == 0 {
		return nil, exceptions.ErrAppointmentMissingAmount(nil)
	}

	bookingSession.AppointmentID = created.ID
	bookingSession.AmountInCents = int64(math.Round(created.Amount * 100))
	bookingSession.Step = models.BookingStepPayment
	if err := u.Bookings.SaveBooking(ctx, bookingSession, u.bookingTTL()); err != nil {
		return nil, err
	}

	u.Log.Info("bookingUsecase.SubmitDetails appointment created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.Int64(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return &responses.BookingDetails{
		AppointmentID: bookingSession.AppointmentID,
		AmountInCents: bookingSession.AmountInCents,
	}, nil
}

// resolvePatient finds the caller's patient record, creating one from the
// collected form data only when the core API says none exists. Transient
// failures propagate instead of spawning duplicate records.
func (u *bookingUsecase) resolvePatient(ctx context.Context, bookingSession *models.BookingSession) (*responses.CorePatient, error) {
	patient, err := u.Patients.GetMyPatient(ctx)
	if err == nil {
		return patient, nil
	}
	if !exceptions.IsNotFound(err) {
		return nil, err
	}
	return u.Patients.CreatePatient(ctx, &bookingSession.PatientInfo)
}

func (u *bookingUsecase) CreateIntent(ctx context.Context, bookingID string) (*responses.PaymentIntent, error) {
	bookingSession, err := u.Bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !bookingSession.ReadyForPayment() {
		return nil, exceptions.ErrBookingNotReady(nil)
	}
	if bookingSession.ClientSecret != "" {
		return &responses.PaymentIntent{ClientSecret: bookingSession.ClientSecret}, nil
	}

	intent, err := u.Payments.CreateIntent(ctx, &requests.CreatePaymentIntent{
		AppointmentID: bookingSession.AppointmentID,
		AmountInCents: bookingSession.AmountInCents,
		Currency:      constvars.DefaultCurrency,
	})
	if err != nil {
		return nil, err
	}

	bookingSession.ClientSecret = intent.ClientSecret
	if err := u.Bookings.SaveBooking(ctx, bookingSession, u.bookingTTL()); err != nil {
		return nil, err
	}
	return intent, nil
}

func (u *bookingUsecase) ConfirmCard(ctx context.Context, bookingID string, request *requests.ConfirmCardPayment) (*responses.CheckoutResult, error) {
	bookingSession, err := u.Bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if bookingSession.Completed {
		return u.checkoutResult(bookingSession, "CARD", string(models.StatusConfirmed)), nil
	}
	if !bookingSession.ReadyForPayment() {
		return nil, exceptions.ErrBookingNotReady(nil)
	}
	if bookingSession.ClientSecret == "" {
		return nil, exceptions.WrapWithoutError(constvars.StatusConflict, constvars.ErrClientPaymentNotInitialized,
			"card confirmation requested before a payment intent was created")
	}

	confirmation, err := u.Gateway.ConfirmPaymentIntent(ctx, bookingSession.ClientSecret, request.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if confirmation.Status != "succeeded" {
		return nil, exceptions.ErrPaymentGatewayConfirm(fmt.Errorf("payment intent ended in status %s", confirmation.Status))
	}

	if err := u.finalize(ctx, bookingSession, "CARD"); err != nil {
		return nil, err
	}
	return u.checkoutResult(bookingSession, "CARD", string(models.StatusConfirmed)), nil
}

func (u *bookingUsecase) PayCash(ctx context.Context, bookingID string) (*responses.CheckoutResult, error) {
	bookingSession, err := u.Bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if bookingSession.Completed {
		return u.checkoutResult(bookingSession, "CASH", string(models.StatusPending)), nil
	}
	if !bookingSession.ReadyForPayment() {
		return nil, exceptions.ErrBookingNotReady(nil)
	}

	amount := float64(bookingSession.AmountInCents) / 100
	if err := u.Payments.PayCash(ctx, bookingSession.AppointmentID, amount); err != nil {
		return nil, err
	}

	if err := u.finalize(ctx, bookingSession, "CASH"); err != nil {
		return nil, err
	}
	return u.checkoutResult(bookingSession, "CASH", string(models.StatusPending)), nil
}

// finalize marks the booking session completed so retries return the earlier
// result instead of paying twice, then announces the booking. The session
// expires with its TTL rather than being deleted, keeping the retry window
// open.
func (u *bookingUsecase) finalize(ctx context.Context, bookingSession *models.BookingSession, paymentMethod string) error {
	requestID := utils.RequestIDFromContext(ctx)

	bookingSession.Completed = true
	if err := u.Bookings.SaveBooking(ctx, bookingSession, u.bookingTTL()); err != nil {
		return err
	}

	event := models.BookingConfirmedEvent{
		AppointmentID: bookingSession.AppointmentID,
		PaymentMethod: paymentMethod,
		AmountInCents: bookingSession.AmountInCents,
		PaidAt:        time.Now(),
	}
	if err := u.Publisher.Publish(ctx, event); err != nil {
		// The payment already went through, dropping the notification must not
		// fail the checkout.
		u.Log.Error("bookingUsecase.finalize failed to publish booking confirmed event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, bookingSession.AppointmentID),
			zap.Error(err),
		)
	}
	return nil
}

func (u *bookingUsecase) checkoutResult(bookingSession *models.BookingSession, paymentMethod, status string) *responses.CheckoutResult {
	return &responses.CheckoutResult{
		AppointmentID: bookingSession.AppointmentID,
		PaymentMethod: paymentMethod,
		Status:        status,
	}
}
