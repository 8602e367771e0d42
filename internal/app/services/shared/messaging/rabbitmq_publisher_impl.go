package messaging

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/config"
	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

var (
	rabbitMQPublisherInstance contracts.MessagePublisher
	onceRabbitMQPublisher     sync.Once
)

type rabbitMQPublisher struct {
	Connection *amqp.Connection
	QueueName  string
	Log        *zap.Logger
}

// NewRabbitMQPublisher declares the queue once at startup so publishes cannot
// race queue creation.
func NewRabbitMQPublisher(connection *amqp.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.MessagePublisher, error) {
	var declareErr error
	onceRabbitMQPublisher.Do(func() {
		channel, err := connection.Channel()
		if err != nil {
			declareErr = err
			return
		}
		defer channel.Close()

		_, err = channel.QueueDeclare(internalConfig.Queue.BookingConfirmedQueue, true, false, false, false, nil)
		if err != nil {
			declareErr = err
			return
		}

		rabbitMQPublisherInstance = &rabbitMQPublisher{
			Connection: connection,
			QueueName:  internalConfig.Queue.BookingConfirmedQueue,
			Log:        logger,
		}
	})
	if declareErr != nil {
		return nil, declareErr
	}
	return rabbitMQPublisherInstance, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, body interface{}) error {
	requestID := utils.RequestIDFromContext(ctx)

	messageBody, err := json.Marshal(body)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.Connection.Channel()
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish error opening channel",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPublishMessage(err)
	}
	defer channel.Close()

	err = channel.PublishWithContext(ctx, "", p.QueueName, false, false, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		Body:         messageBody,
	})
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("queue", p.QueueName),
			zap.Error(err),
		)
		return exceptions.ErrPublishMessage(err)
	}

	p.Log.Info("rabbitMQPublisher.Publish message published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("queue", p.QueueName),
	)
	return nil
}
