package routes

import (
	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gekoeducation/geko-api/middleware"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gofiber/fiber/v2"
)

func EventRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/events", handlers.ListEvents)
	api.Get("/events/:id", handlers.GetEvent)

	admin := api.Group("/events", middleware.Protected(cfg.JWTSecret), middleware.AdminRequired())
	admin.Post("", handlers.CreateEvent)
	admin.Put("/:id", handlers.UpdateEvent)
	admin.Delete("/:id", handlers.DeleteEvent)
	admin.Post("/update-order", handlers.UpdateOrderFor(&models.Event{}, "event"))
}
