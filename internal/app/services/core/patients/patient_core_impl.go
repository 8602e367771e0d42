package patients

import (
	"context"
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
	patientCoreClientInstance contracts.PatientCoreClient
	oncePatientCoreClient     sync.Once
)

type patientCoreClient struct {
	Client *coreapi.Client
	Log    *zap.Logger
}

func NewPatientCoreClient(client *coreapi.Client, logger *zap.Logger) contracts.PatientCoreClient {
	oncePatientCoreClient.Do(func() {
		patientCoreClientInstance = &patientCoreClient{
			Client: client,
			Log:    logger,
		}
	})
	return patientCoreClientInstance
}

// GetMyPatient returns the patient record owned by the current account. A 404
// comes back as ErrCoreAPIResourceNotFound so callers can distinguish "no
// record yet" from transient failures.
func (c *patientCoreClient) GetMyPatient(ctx context.Context) (*responses.CorePatient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientCoreClient.GetMyPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient := new(responses.CorePatient)
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.CoreAPIPathPatientsMy, nil, nil, patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *patientCoreClient) CreatePatient(ctx context.Context, request *requests.PatientInfo) (*responses.CorePatient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientCoreClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient := new(responses.CorePatient)
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.CoreAPIPathPatients, nil, request, patient)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientCoreClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}
