package routers

import (
	"github.com/go-chi/chi/v5"

	"finddoctor-service/internal/app/delivery/http/controllers"
	"finddoctor-service/internal/app/delivery/http/middlewares"
	"finddoctor-service/internal/pkg/constvars"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Get("/admin", dashboardController.Admin)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Get("/doctor", dashboardController.Doctor)
}
