package routers

import (
	"github.com/go-chi/chi/v5"

	"finddoctor-service/internal/app/delivery/http/controllers"
	"finddoctor-service/internal/app/delivery/http/middlewares"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/register", authController.Register)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
	router.With(middlewares.Authenticate).Put("/profile", authController.UpdateProfile)
	router.With(middlewares.Authenticate).Post("/profile/photo", authController.UploadProfilePhoto)
}
