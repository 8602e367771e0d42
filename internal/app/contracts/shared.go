package contracts

import (
	"context"
	"io"
	"time"

	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/dto/responses"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error

	CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SaveBooking(ctx context.Context, booking *models.BookingSession, ttl time.Duration) error
	GetBooking(ctx context.Context, bookingID string) (*models.BookingSession, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

// PaymentGatewayService confirms payment intents with the processor. Card data
// never passes through here, confirmation references the processor's
// payment-method token only.
type PaymentGatewayService interface {
	ConfirmPaymentIntent(ctx context.Context, clientSecret, paymentMethodID string) (*responses.PaymentConfirmation, error)
}

type StorageService interface {
	UploadProfilePhoto(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type MessagePublisher interface {
	Publish(ctx context.Context, body interface{}) error
}
