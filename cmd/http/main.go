package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"finddoctor-service/internal/app/config"
	"finddoctor-service/internal/app/delivery/http/controllers"
	"finddoctor-service/internal/app/delivery/http/middlewares"
	"finddoctor-service/internal/app/delivery/http/routers"
	"finddoctor-service/internal/app/drivers/database"
	"finddoctor-service/internal/app/drivers/logger"
	"finddoctor-service/internal/app/drivers/messaging"
	"finddoctor-service/internal/app/drivers/storage"
	"finddoctor-service/internal/app/services/appointments"
	"finddoctor-service/internal/app/services/auth"
	"finddoctor-service/internal/app/services/booking"
	appointmentsCore "finddoctor-service/internal/app/services/core/appointments"
	authCore "finddoctor-service/internal/app/services/core/auth"
	dashboardsCore "finddoctor-service/internal/app/services/core/dashboards"
	patientsCore "finddoctor-service/internal/app/services/core/patients"
	paymentsCore "finddoctor-service/internal/app/services/core/payments"
	resourcesCore "finddoctor-service/internal/app/services/core/resources"
	"finddoctor-service/internal/app/services/dashboards"
	"finddoctor-service/internal/app/services/payments"
	"finddoctor-service/internal/app/services/resources"
	"finddoctor-service/internal/app/services/shared/coreapi"
	sharedmessaging "finddoctor-service/internal/app/services/shared/messaging"
	"finddoctor-service/internal/app/services/shared/payment_gateway"
	"finddoctor-service/internal/app/services/shared/redis"
	sharedstorage "finddoctor-service/internal/app/services/shared/storage"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	coreClient := coreapi.NewClient(bootstrap.InternalConfig, redisRepository, bootstrap.ZapLogger)
	stripeService := payment_gateway.NewStripeService(bootstrap.InternalConfig, bootstrap.ZapLogger)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig, bootstrap.ZapLogger)
	bookingPublisher, err := sharedmessaging.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.ZapLogger)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to set up booking queue: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, redisRepository, bootstrap.InternalConfig)

	// Core API clients
	authCoreClient := authCore.NewAuthCoreClient(coreClient, bootstrap.ZapLogger)
	patientCoreClient := patientsCore.NewPatientCoreClient(coreClient, bootstrap.ZapLogger)
	appointmentCoreClient := appointmentsCore.NewAppointmentCoreClient(coreClient, bootstrap.ZapLogger)
	paymentCoreClient := paymentsCore.NewPaymentCoreClient(coreClient, bootstrap.ZapLogger)
	resourceCoreClient := resourcesCore.NewResourceCoreClient(coreClient, bootstrap.ZapLogger)
	dashboardCoreClient := dashboardsCore.NewDashboardCoreClient(coreClient, bootstrap.ZapLogger)

	// Auth
	authUsecase := auth.NewAuthUsecase(authCoreClient, redisRepository, minioStorage, bootstrap.InternalConfig, bootstrap.ZapLogger)
	authController := controllers.NewAuthController(bootstrap.ZapLogger, authUsecase, bootstrap.InternalConfig.App.ProfilePhotoMaxUploadSizeInMB)

	// Booking
	bookingUsecase := booking.NewBookingUsecase(
		redisRepository,
		patientCoreClient,
		appointmentCoreClient,
		paymentCoreClient,
		resourceCoreClient,
		stripeService,
		bookingPublisher,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	bookingController := controllers.NewBookingController(bootstrap.ZapLogger, bookingUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentCoreClient, bootstrap.ZapLogger)
	appointmentController := controllers.NewAppointmentController(bootstrap.ZapLogger, appointmentUsecase)

	// Payments
	paymentUsecase := payments.NewPaymentUsecase(paymentCoreClient, stripeService, bootstrap.ZapLogger)
	paymentController := controllers.NewPaymentController(bootstrap.ZapLogger, paymentUsecase)

	// Resources
	resourceUsecase := resources.NewResourceUsecase(resourceCoreClient, bootstrap.ZapLogger)
	resourceController := controllers.NewResourceController(bootstrap.ZapLogger, resourceUsecase)

	// Dashboards
	dashboardUsecase := dashboards.NewDashboardUsecase(dashboardCoreClient, bootstrap.ZapLogger)
	dashboardController := controllers.NewDashboardController(bootstrap.ZapLogger, dashboardUsecase)

	bootstrap.Router.Use(middlewares.RequestLogger(bootstrap.InternalConfig.App, bootstrap.Logger))

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		bookingController,
		appointmentController,
		paymentController,
		resourceController,
		dashboardController,
	)
}
