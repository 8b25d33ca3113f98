package routes

import (
	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gekoeducation/geko-api/middleware"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/popular_courses", handlers.ListPopularCourses)
	api.Get("/popular_courses/:id", handlers.GetPopularCourse)
	api.Get("/courses/:categoryId", handlers.CoursesByCategory)

	admin := api.Group("/popular_courses", middleware.Protected(cfg.JWTSecret), middleware.AdminRequired())
	admin.Post("", handlers.CreatePopularCourse)
	admin.Put("/:id", handlers.UpdatePopularCourse)
	admin.Delete("/:id", handlers.DeletePopularCourse)
	admin.Post("/update-order", handlers.UpdateOrderFor(&models.PopularCourse{}, "course"))
}
