package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobupdate/application/serviceimpl"
	"jobupdate/domain/services"
	"jobupdate/pkg/logger"
	"jobupdate/pkg/utils"
)

// CronHandler exposes the pipeline trigger endpoints. The scheduler hits the
// same service methods; these routes exist for external cron providers and
// manual operation.
type CronHandler struct {
	pipelineService  services.PipelineService
	lifecycleService services.LifecycleService
	publishService   services.PublishService
}

func NewCronHandler(
	pipelineService services.PipelineService,
	lifecycleService services.LifecycleService,
	publishService services.PublishService,
) *CronHandler {
	return &CronHandler{
		pipelineService:  pipelineService,
		lifecycleService: lifecycleService,
		publishService:   publishService,
	}
}

// Run full cycle: fetch, sweep, post
func (h *CronHandler) Run(c *fiber.Ctx) error {
	ctx := c.UserContext()

	result, err := h.pipelineService.Run(ctx)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrRunInProgress) {
			return utils.ConflictResponse(c, "A pipeline run is already in progress")
		}
		logger.ErrorContext(ctx, "Pipeline run failed", "error", err)
		return utils.InternalErrorResponse(c, "Pipeline run failed")
	}

	return utils.SuccessResponse(c, result)
}

// Fetch fetch+ingest only
func (h *CronHandler) Fetch(c *fiber.Ctx) error {
	ctx := c.UserContext()

	result, err := h.pipelineService.Fetch(ctx)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrRunInProgress) {
			return utils.ConflictResponse(c, "A pipeline run is already in progress")
		}
		logger.ErrorContext(ctx, "Fetch run failed", "error", err)
		return utils.InternalErrorResponse(c, "Fetch run failed")
	}

	return utils.SuccessResponse(c, result)
}

// Cleanup maintenance sweep only
func (h *CronHandler) Cleanup(c *fiber.Ctx) error {
	ctx := c.UserContext()

	result, err := h.lifecycleService.Sweep(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Cleanup sweep failed", "error", err)
		return utils.InternalErrorResponse(c, "Cleanup sweep failed")
	}

	return utils.SuccessResponse(c, result)
}

// ForcePost bounded recovery posting
func (h *CronHandler) ForcePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	limit := c.QueryInt("limit", 0)

	result, err := h.publishService.ForcePost(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Force post failed", "error", err)
		return utils.InternalErrorResponse(c, "Force post failed")
	}

	return utils.SuccessResponse(c, result)
}

// PostJob posts one record to every configured channel
func (h *CronHandler) PostJob(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	if err := h.publishService.PostJob(ctx, slug); err != nil {
		logger.ErrorContext(ctx, "Manual post failed", "slug", slug, "error", err)
		return utils.InternalErrorResponse(c, "Failed to post job")
	}

	return utils.SuccessResponse(c, fiber.Map{"slug": slug, "posted": true})
}
