package routers

import (
	"github.com/go-chi/chi/v5"

	"finddoctor-service/internal/app/delivery/http/controllers"
	"finddoctor-service/internal/app/delivery/http/middlewares"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/rbac"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Use(middlewares.Authenticate)

	router.Post("/create-payment-intent", paymentController.CreateIntent)
	router.Post("/confirm-card", paymentController.ConfirmCard)
	router.Post("/pay-cash", paymentController.PayCash)
	router.Get("/unpaid-appointments", paymentController.UnpaidAppointments)
	router.With(middlewares.Capability(constvars.ResourcePayments, rbac.ActionRefund)).Post("/{paymentID}/refund", paymentController.Refund)
}
