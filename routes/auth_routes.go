package routes

import (
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/auth/login", handlers.Login)
}
