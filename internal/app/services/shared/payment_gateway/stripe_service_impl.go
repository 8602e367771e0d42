package payment_gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/config"
	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

var (
	stripeServiceInstance contracts.PaymentGatewayService
	onceStripeService     sync.Once
)

type stripeService struct {
	BaseUrl    string
	SecretKey  string
	HttpClient *http.Client
	Log        *zap.Logger
}

// confirmResponse is the slice of the processor's intent object this service
// reads. Raw card data never appears here, confirmation references a
// payment-method token created by the hosted card element.
type confirmResponse struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	LastPaymentError *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

func NewStripeService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceStripeService.Do(func() {
		stripeServiceInstance = &stripeService{
			BaseUrl:    internalConfig.PaymentGateway.BaseUrl,
			SecretKey:  internalConfig.PaymentGateway.SecretKey,
			HttpClient: &http.Client{Timeout: 15 * time.Second},
			Log:        logger,
		}
	})
	return stripeServiceInstance
}

func (s *stripeService) ConfirmPaymentIntent(ctx context.Context, clientSecret, paymentMethodID string) (*responses.PaymentConfirmation, error) {
	requestID := utils.RequestIDFromContext(ctx)

	intentID, err := intentIDFromClientSecret(clientSecret)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("payment_method", paymentMethodID)
	form.Set("client_secret", clientSecret)

	endpoint := fmt.Sprintf("%s/v1/payment_intents/%s/confirm", s.BaseUrl, intentID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+s.SecretKey)

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		s.Log.Error("stripeService.ConfirmPaymentIntent error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	confirmation := new(confirmResponse)
	if err := json.NewDecoder(resp.Body).Decode(confirmation); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment intent")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := "payment confirmation rejected by processor"
		if confirmation.LastPaymentError != nil {
			message = confirmation.LastPaymentError.Message
		}
		s.Log.Error("stripeService.ConfirmPaymentIntent processor rejected confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("processor_message", message),
		)
		return nil, exceptions.ErrPaymentGatewayConfirm(errors.New(message))
	}

	s.Log.Info("stripeService.ConfirmPaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("intent_id", confirmation.ID),
		zap.String("intent_status", confirmation.Status),
	)

	result := &responses.PaymentConfirmation{
		IntentID: confirmation.ID,
		Status:   confirmation.Status,
	}
	if confirmation.LastPaymentError != nil {
		result.Message = confirmation.LastPaymentError.Message
	}
	return result, nil
}

// Client secrets look like pi_123_secret_456; everything before the _secret_
// marker is the intent ID.
func intentIDFromClientSecret(clientSecret string) (string, error) {
	marker := strings.Index(clientSecret, "_secret")
	if marker <= 0 {
		return "", exceptions.ErrPaymentIntentBadSecret(nil)
	}
	return clientSecret[:marker], nil
}
