package routes

import (
	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gekoeducation/geko-api/middleware"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gofiber/fiber/v2"
)

func TeamRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/teams", handlers.ListTeams)
	api.Get("/teams/:id", handlers.GetTeam)

	admin := api.Group("/teams", middleware.Protected(cfg.JWTSecret), middleware.AdminRequired())
	admin.Post("", handlers.CreateTeam)
	admin.Put("/:id", handlers.UpdateTeam)
	admin.Delete("/:id", handlers.DeleteTeam)
	admin.Post("/update-order", handlers.UpdateOrderFor(&models.Team{}, "team"))
}
