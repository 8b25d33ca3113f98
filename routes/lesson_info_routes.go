package routes

import (
	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gekoeducation/geko-api/middleware"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gofiber/fiber/v2"
)

func LessonInfoRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/lesson_info", handlers.ListLessonInfo)
	api.Get("/lesson_info/:id", handlers.GetLessonInfo)

	admin := api.Group("/lesson_info", middleware.Protected(cfg.JWTSecret), middleware.AdminRequired())
	admin.Post("", handlers.CreateLessonInfo)
	admin.Put("/:id", handlers.UpdateLessonInfo)
	admin.Delete("/:id", handlers.DeleteLessonInfo)
	admin.Post("/update-order", handlers.UpdateOrderFor(&models.LessonInfo{}, "lesson info"))
}
