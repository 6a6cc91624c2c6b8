package routes

import (
	"github.com/gofiber/fiber/v2"

	"jobupdate/interfaces/api/handlers"
	"jobupdate/interfaces/api/middleware"
	"jobupdate/pkg/config"
)

func SetupJobRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	jobs := api.Group("/jobs")

	// Public routes
	jobs.Get("/", h.JobHandler.List)
	jobs.Get("/stats", h.JobHandler.Stats)
	jobs.Get("/:slug", h.JobHandler.GetBySlug)

	// Protected routes (admin token required)
	protected := jobs.Group("", middleware.AdminAuthMiddleware(&cfg.JWT))
	protected.Post("/", h.JobHandler.Create)
	protected.Patch("/:slug/status", h.JobHandler.UpdateStatus)
}
