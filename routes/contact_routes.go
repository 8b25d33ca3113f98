package routes

import (
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gofiber/fiber/v2"
)

func ContactRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/contact", handlers.SubmitContactForm)
}
