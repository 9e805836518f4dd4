package routes

import (
	"github.com/gofiber/fiber/v2"

	"postboard/internal/handlers"
	"postboard/internal/middleware"
	"postboard/services"
)

func UserRoutes(app *fiber.App, svc *services.AuthService) {
	users := app.Group("/users")

	users.Post("/register", handlers.RegisterHandler(svc))
	users.Post("/login", handlers.LoginHandler(svc))
	users.Get("/current", middleware.RequireAuth(), handlers.CurrentUserHandler(svc))
}
