package payments

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

// paymentUsecase serves the standalone payments page, where staff settle or
// refund payments outside the booking flow.
type paymentUsecase struct {
	Payments contracts.PaymentCoreClient
	Gateway  contracts.PaymentGatewayService
	Log      *zap.Logger
}

func NewPaymentUsecase(payments contracts.PaymentCoreClient, gateway contracts.PaymentGatewayService, logger *zap.Logger) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			Payments: payments,
			Gateway:  gateway,
			Log:      logger,
		}
	})
	return paymentUsecaseInstance
}

func (u *paymentUsecase) CreateIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	return u.Payments.CreateIntent(ctx, request)
}

func (u *paymentUsecase) ConfirmCard(ctx context.Context, clientSecret string, request *requests.ConfirmCardPayment) (*responses.PaymentConfirmation, error) {
	confirmation, err := u.Gateway.ConfirmPaymentIntent(ctx, clientSecret, request.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if confirmation.Status != "succeeded" {
		return nil, exceptions.ErrPaymentGatewayConfirm(fmt.Errorf("payment intent ended in status %s", confirmation.Status))
	}
	return confirmation, nil
}

func (u *paymentUsecase) PayCash(ctx context.Context, request *requests.PayCash) (*responses.CheckoutResult, error) {
	if err := u.Payments.PayCash(ctx, request.AppointmentID, request.Amount); err != nil {
		return nil, err
	}
	return &responses.CheckoutResult{
		AppointmentID: request.AppointmentID,
		PaymentMethod: "CASH",
		Status:        string(models.PaymentPending),
	}, nil
}

// Refund checks the current payment status first so an already refunded
// payment is rejected without an upstream call.
func (u *paymentUsecase) Refund(ctx context.Context, paymentID int64) error {
	requestID := utils.RequestIDFromContext(ctx)

	payment, err := u.Payments.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	if models.PaymentStatus(payment.PaymentStatus) == models.PaymentRefunded {
		return exceptions.WrapWithoutError(constvars.StatusConflict, constvars.ErrClientPaymentAlreadyRefunded,
			fmt.Sprintf("payment %d already has status %s", paymentID, payment.PaymentStatus))
	}

	if err := u.Payments.Refund(ctx, paymentID); err != nil {
		return err
	}

	u.Log.Info("paymentUsecase.Refund succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPaymentIDKey, paymentID),
	)
	return nil
}

func (u *paymentUsecase) UnpaidAppointments(ctx context.Context) ([]responses.Appointment, error) {
	return u.Payments.UnpaidAppointments(ctx)
}
