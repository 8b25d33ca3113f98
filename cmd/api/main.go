package main

import (
	"log"
	"time"

	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/handlers"
	"github.com/gekoeducation/geko-api/jobs"
	"github.com/gekoeducation/geko-api/notifications"
	"github.com/gekoeducation/geko-api/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	database.ConnectDB(cfg)
	database.Migrate()
	database.SeedAdmin(cfg)

	mailer := notifications.NewMailer(cfg)
	handlers.Setup(cfg, mailer)

	c := cron.New()
	c.AddFunc("@hourly", jobs.RefreshEventStatuses)
	go c.Start()

	app := fiber.New(fiber.Config{
		AppName:       "Geko Education API",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app)
	routes.CategoryRoutes(app, cfg)
	routes.CourseRoutes(app, cfg)
	routes.EventRoutes(app, cfg)
	routes.TeamRoutes(app, cfg)
	routes.LessonInfoRoutes(app, cfg)
	routes.ReviewRoutes(app, cfg)
	routes.LanguageRoutes(app, cfg)
	routes.ContactRoutes(app)
	routes.AdminRoutes(app, cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	log.Printf("✅ Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
