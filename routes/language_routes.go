package routes

import (
	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gekoeducation/geko-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func LanguageRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/languages", handlers.ListLanguages)

	admin := api.Group("/languages", middleware.Protected(cfg.JWTSecret), middleware.AdminRequired())
	admin.Post("", handlers.CreateLanguage)
	admin.Delete("/:id", handlers.DeleteLanguage)
}
