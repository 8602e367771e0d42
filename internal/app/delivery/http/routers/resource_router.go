package routers

import (
	"github.com/go-chi/chi/v5"

	"finddoctor-service/internal/app/delivery/http/controllers"
	"finddoctor-service/internal/app/delivery/http/middlewares"
)

func attachResourceRoutes(router chi.Router, middlewares *middlewares.Middlewares, resourceController *controllers.ResourceController) {
	router.Use(middlewares.Authenticate)

	router.Route("/{resource}", func(r chi.Router) {
		r.Use(middlewares.ResourceCapability)

		r.Get("/", resourceController.List)
		r.Post("/", resourceController.Create)
		r.Get("/{id}", resourceController.Get)
		r.Put("/{id}", resourceController.Update)
		r.Delete("/{id}", resourceController.Delete)
	})
}
