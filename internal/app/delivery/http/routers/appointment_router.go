package routers

import (
	"github.com/go-chi/chi/v5"

	"finddoctor-service/internal/app/delivery/http/controllers"
	"finddoctor-service/internal/app/delivery/http/middlewares"
	"finddoctor-service/internal/pkg/constvars"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", appointmentController.List)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Get("/history", appointmentController.History)
	router.Patch("/{appointmentID}/status", appointmentController.Transition)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{appointmentID}", appointmentController.Delete)
}
