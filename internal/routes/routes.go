package routes

import (
	"github.com/Arivumathi323/login/internal/handlers"
	"github.com/Arivumathi323/login/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, jwtSecret string, authHandler *handlers.AuthHandler, dashboardHandler *handlers.DashboardHandler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	protected := api.Group("/", middleware.Protected(jwtSecret))

	protected.Get("/me", authHandler.GetMe)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)
	protected.Post("/activities", dashboardHandler.CreateActivity)
}
