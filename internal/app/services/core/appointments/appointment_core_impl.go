package appointments

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/services/shared/coreapi"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/utils"
)

var (
	appointmentCoreClientInstance contracts.AppointmentCoreClient
	onceAppointmentCoreClient     sync.Once
)

type appointmentCoreClient struct {
	Client *coreapi.Client
	Log    *zap.Logger
}

func NewAppointmentCoreClient(client *coreapi.Client, logger *zap.Logger) contracts.AppointmentCoreClient {
	onceAppointmentCoreClient.Do(func() {
		appointmentCoreClientInstance = &appointmentCoreClient{
			Client: client,
			Log:    logger,
		}
	})
	return appointmentCoreClientInstance
}

// Create books an appointment. The core API takes these as query parameters,
// not a JSON body.
func (c *appointmentCoreClient) Create(ctx context.Context, params contracts.CreateAppointmentParams) (*responses.CreatedAppointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("appointmentCoreClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set("patientId", strconv.FormatInt(params.PatientID, 10))
	query.Set("doctorId", strconv.FormatInt(params.DoctorID, 10))
	query.Set("appointmentTypeId", strconv.FormatInt(params.AppointmentTypeID, 10))
	query.Set("dateTime", params.DateTime)
	if params.Note != "" {
		query.Set("note", params.Note)
	}

	created := new(responses.CreatedAppointment)
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.CoreAPIPathAppointments, query, nil, created)
	if err != nil {
		return nil, err
	}

	c.Log.Info("appointmentCoreClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return created, nil
}

func (c *appointmentCoreClient) Get(ctx context.Context, appointmentID int64) (*responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("appointmentCoreClient.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment := new(responses.Appointment)
	path := fmt.Sprintf("%s/%d", constvars.CoreAPIPathAppointments, appointmentID)
	err := c.Client.Do(ctx, constvars.MethodGet, path, nil, nil, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// List fetches one page of appointments from the given scope path, which
// decides whose appointments come back.
func (c *appointmentCoreClient) List(ctx context.Context, scope string, query requests.ListQuery) (*responses.AppointmentPage, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("appointmentCoreClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, scope),
	)

	page := new(responses.AppointmentPage)
	err := c.Client.Do(ctx, constvars.MethodGet, scope, query.Values("status"), nil, page)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (c *appointmentCoreClient) Transition(ctx context.Context, appointmentID int64, transitionPath string) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("appointmentCoreClient.Transition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("transition", transitionPath),
	)

	path := fmt.Sprintf("%s/%d/%s", constvars.CoreAPIPathAppointments, appointmentID, transitionPath)
	return c.Client.Do(ctx, constvars.MethodPatch, path, nil, nil, nil)
}

func (c *appointmentCoreClient) Delete(ctx context.Context, appointmentID int64) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("appointmentCoreClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	path := fmt.Sprintf("%s/%d", constvars.CoreAPIPathAppointments, appointmentID)
	return c.Client.Do(ctx, constvars.MethodDelete, path, nil, nil, nil)
}
