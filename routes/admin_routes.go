package routes

import (
	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gekoeducation/geko-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, cfg *config.Config) {
	admin := app.Group("/api/admin", middleware.Protected(cfg.JWTSecret), middleware.AdminRequired())

	admin.Post("/uploads", handlers.UploadImage)
	admin.Get("/contact-messages", handlers.ListContactMessages)
}
