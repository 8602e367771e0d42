package payments

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
	paymentCoreClientInstance contracts.PaymentCoreClient
	oncePaymentCoreClient     sync.Once
)

type paymentCoreClient struct {
	Client *coreapi.Client
	Log    *zap.Logger
}

func NewPaymentCoreClient(client *coreapi.Client, logger *zap.Logger) contracts.PaymentCoreClient {
	oncePaymentCoreClient.Do(func() {
		paymentCoreClientInstance = &paymentCoreClient{
			Client: client,
			Log:    logger,
		}
	})
	return paymentCoreClientInstance
}

func (c *paymentCoreClient) CreateIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("paymentCoreClient.CreateIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	intent := new(responses.PaymentIntent)
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.CoreAPIPathCreateIntent, nil, request, intent)
	if err != nil {
		return nil, err
	}
	return intent, nil
}

// PayCash records a cash payment. The core API takes these as query
// parameters, not a JSON body.
func (c *paymentCoreClient) PayCash(ctx context.Context, appointmentID int64, amount float64) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("paymentCoreClient.PayCash called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	query := url.Values{}
	query.Set("appointmentId", strconv.FormatInt(appointmentID, 10))
	query.Set("amount", strconv.FormatFloat(amount, 'f', 2, 64))

	return c.Client.Do(ctx, constvars.MethodPost, constvars.CoreAPIPathPayCash, query, nil, nil)
}

func (c *paymentCoreClient) Refund(ctx context.Context, paymentID int64) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("paymentCoreClient.Refund called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPaymentIDKey, paymentID),
	)

	path := fmt.Sprintf("/api/%s/%d/refund", constvars.ResourcePayments, paymentID)
	return c.Client.Do(ctx, constvars.MethodPost, path, nil, nil, nil)
}

func (c *paymentCoreClient) GetPayment(ctx context.Context, paymentID int64) (*responses.Payment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("paymentCoreClient.GetPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPaymentIDKey, paymentID),
	)

	payment := new(responses.Payment)
	path := fmt.Sprintf("/api/%s/%d", constvars.ResourcePayments, paymentID)
	err := c.Client.Do(ctx, constvars.MethodGet, path, nil, nil, payment)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (c *paymentCoreClient) UnpaidAppointments(ctx context.Context) ([]responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("paymentCoreClient.UnpaidAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var unpaid []responses.Appointment
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.CoreAPIPathUnpaid, nil, nil, &unpaid)
	if err != nil {
		return nil, err
	}
	return unpaid, nil
}
