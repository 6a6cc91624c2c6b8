package routes

import (
	"github.com/gofiber/fiber/v2"

	"jobupdate/interfaces/api/handlers"
	"jobupdate/interfaces/api/middleware"
	"jobupdate/pkg/config"
)

// SetupCronRoutes trigger endpoints for external cron providers. Every
// route requires the pre-shared key or an admin token.
func SetupCronRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	cron := api.Group("/cron", middleware.CronAuthMiddleware(&cfg.Cron, &cfg.JWT))

	cron.Get("/run", h.CronHandler.Run)
	cron.Get("/fetch", h.CronHandler.Fetch)
	cron.Get("/cleanup", h.CronHandler.Cleanup)
	cron.Get("/force-post", h.CronHandler.ForcePost)
	cron.Post("/post/:slug", h.CronHandler.PostJob)
}
