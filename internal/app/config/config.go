package config

import (
	"github.com/joho/godotenv"

	"finddoctor-service/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "profile-photos"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level: utils.GetEnvString("LOGGER_LEVEL", "debug"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                           utils.GetEnvString("APP_ENV", "development"),
			Port:                          utils.GetEnvString("APP_PORT", ":3000"),
			Timezone:                      utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:                utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                   utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:               utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte:    utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			ProfilePhotoMaxUploadSizeInMB: utils.GetEnvInt64("APP_PROFILE_PHOTO_UPLOAD_MAX_SIZE_IN_MB", 2),
			BookingSessionTTLInMinute:     utils.GetEnvInt("APP_BOOKING_SESSION_TTL_IN_MINUTE", 30),
		},
		CoreAPI: CoreAPI{
			BaseUrl:              utils.GetEnvString("CORE_API_BASE_URL", "http://localhost:8080"),
			TimeoutInSecond:      utils.GetEnvInt("CORE_API_TIMEOUT_IN_SECOND", 10),
			MaxRequestsPerSecond: utils.GetEnvFloat("CORE_API_MAX_REQUESTS_PER_SECOND", 50),
			BurstSize:            utils.GetEnvInt("CORE_API_BURST_SIZE", 25),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:   utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.stripe.com"),
			SecretKey: utils.GetEnvString("PAYMENT_GATEWAY_SECRET_KEY", ""),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Queue: Queue{
			BookingConfirmedQueue: utils.GetEnvString("APP_RABBITMQ_BOOKING_CONFIRMED_QUEUE", "booking-confirmed"),
		},
	}
}
