package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Minio          *minio.Client
		RabbitMQ       *amqp.Connection
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App            App
		CoreAPI        CoreAPI
		PaymentGateway PaymentGateway
		JWT            JWT
		Queue          Queue
	}

	DriverConfig struct {
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                           string
		Port                          string
		Timezone                      string
		EndpointPrefix                string
		MaxRequests                   int
		ShutdownTimeout               int
		RequestBodyLimitInMegabyte    int
		ProfilePhotoMaxUploadSizeInMB int64
		BookingSessionTTLInMinute     int
	}

	CoreAPI struct {
		BaseUrl              string
		TimeoutInSecond      int
		MaxRequestsPerSecond float64
		BurstSize            int
	}

	PaymentGateway struct {
		BaseUrl   string
		SecretKey string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Queue struct {
		BookingConfirmedQueue string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level string
	}
)
