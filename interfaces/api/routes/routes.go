package routes

import (
	"github.com/gofiber/fiber/v2"

	"jobupdate/interfaces/api/handlers"
	"jobupdate/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config) {
	// Setup health and root routes
	SetupHealthRoutes(app, cfg)

	// API version group
	api := app.Group("/api/v1")

	SetupJobRoutes(api, h, cfg)
	SetupCronRoutes(api, h, cfg)
}
