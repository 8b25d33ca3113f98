package routes

import (
	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gekoeducation/geko-api/middleware"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/categories", handlers.ListCategories)
	api.Get("/categories/:id", handlers.GetCategory)

	admin := api.Group("/categories", middleware.Protected(cfg.JWTSecret), middleware.AdminRequired())
	admin.Post("", handlers.CreateCategory)
	admin.Put("/:id", handlers.UpdateCategory)
	admin.Delete("/:id", handlers.DeleteCategory)

	// The admin frontend posts category ordering to this top-level path.
	api.Post("/update-order",
		middleware.Protected(cfg.JWTSecret), middleware.AdminRequired(),
		handlers.UpdateOrderFor(&models.Category{}, "category"))
}
