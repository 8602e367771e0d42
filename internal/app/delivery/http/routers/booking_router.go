package routers

import (
	"github.com/go-chi/chi/v5"

	"finddoctor-service/internal/app/delivery/http/controllers"
	"finddoctor-service/internal/app/delivery/http/middlewares"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", bookingController.Start)
	router.Get("/form-data", bookingController.FormData)
	router.Put("/{bookingID}/patient-info", bookingController.SubmitPatientInfo)
	router.Put("/{bookingID}/details", bookingController.SubmitDetails)
	router.Post("/{bookingID}/payment-intent", bookingController.CreateIntent)
	router.Post("/{bookingID}/confirm-card", bookingController.ConfirmCard)
	router.Post("/{bookingID}/pay-cash", bookingController.PayCash)
}
