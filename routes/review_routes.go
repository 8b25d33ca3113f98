package routes

import (
	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gekoeducation/geko-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/reviews", handlers.ListReviews)
	api.Get("/reviews/:id", handlers.GetReview)

	admin := api.Group("/reviews", middleware.Protected(cfg.JWTSecret), middleware.AdminRequired())
	admin.Post("", handlers.CreateReview)
	admin.Put("/:id", handlers.UpdateReview)
	admin.Delete("/:id", handlers.DeleteReview)
}
