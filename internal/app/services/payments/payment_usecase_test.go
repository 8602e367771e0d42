package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
)

type paymentCoreFake struct {
	payment     responses.Payment
	refundCalls int
	cashCalls   int
}

func (f *paymentCoreFake) CreateIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	return &responses.PaymentIntent{ClientSecret: "pi_1_secret_x"}, nil
}
func (f *paymentCoreFake) PayCash(ctx context.Context, appointmentID int64, amount float64) error {
	f.cashCalls++
	return nil
}
func (f *paymentCoreFake) Refund(ctx context.Context, paymentID int64) error {
	f.refundCalls++
	return nil
}
func (f *paymentCoreFake) GetPayment(ctx context.Context, paymentID int64) (*responses.Payment, error) {
	payment := f.payment
	return &payment, nil
}
func (f *paymentCoreFake) UnpaidAppointments(ctx context.Context) ([]responses.Appointment, error) {
	return []responses.Appointment{{ID: 9, Status: string(models.StatusPending)}}, nil
}

type confirmGatewayFake struct {
	status string
}

func (f *confirmGatewayFake) ConfirmPaymentIntent(ctx context.Context, clientSecret, paymentMethodID string) (*responses.PaymentConfirmation, error) {
	return &responses.PaymentConfirmation{IntentID: "pi_1", Status: f.status}, nil
}

func TestRefund(t *testing.T) {
	t.Run("refunds a paid payment", func(t *testing.T) {
		fake := &paymentCoreFake{payment: responses.Payment{ID: 5, PaymentStatus: string(models.PaymentPaid)}}
		usecase := &paymentUsecase{Payments: fake, Gateway: &confirmGatewayFake{status: "succeeded"}, Log: zap.NewNop()}

		err := usecase.Refund(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, 1, fake.refundCalls)
	})

	t.Run("rejects an already refunded payment without an upstream call", func(t *testing.T) {
		fake := &paymentCoreFake{payment: responses.Payment{ID: 5, PaymentStatus: string(models.PaymentRefunded)}}
		usecase := &paymentUsecase{Payments: fake, Gateway: &confirmGatewayFake{status: "succeeded"}, Log: zap.NewNop()}

		err := usecase.Refund(context.Background(), 5)

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientPaymentAlreadyRefunded, customErr.ClientMessage)
		assert.Equal(t, 0, fake.refundCalls)
	})
}

func TestConfirmCardStandalone(t *testing.T) {
	t.Run("returns confirmation on success", func(t *testing.T) {
		usecase := &paymentUsecase{Payments: &paymentCoreFake{}, Gateway: &confirmGatewayFake{status: "succeeded"}, Log: zap.NewNop()}

		confirmation, err := usecase.ConfirmCard(context.Background(), "pi_1_secret_x", &requests.ConfirmCardPayment{PaymentMethodID: "pm_1"})

		require.NoError(t, err)
		assert.Equal(t, "succeeded", confirmation.Status)
	})

	t.Run("fails on any other intent status", func(t *testing.T) {
		usecase := &paymentUsecase{Payments: &paymentCoreFake{}, Gateway: &confirmGatewayFake{status: "processing"}, Log: zap.NewNop()}

		_, err := usecase.ConfirmCard(context.Background(), "pi_1_secret_x", &requests.ConfirmCardPayment{PaymentMethodID: "pm_1"})

		require.Error(t, err)
	})
}

func TestPayCashStandalone(t *testing.T) {
	fake := &paymentCoreFake{}
	usecase := &paymentUsecase{Payments: fake, Gateway: &confirmGatewayFake{status: "succeeded"}, Log: zap.NewNop()}

	result, err := usecase.PayCash(context.Background(), &requests.PayCash{AppointmentID: 9, Amount: 25})

	require.NoError(t, err)
	assert.Equal(t, int64(9), result.AppointmentID)
	assert.Equal(t, "CASH", result.PaymentMethod)
	assert.Equal(t, 1, fake.cashCalls)
}
