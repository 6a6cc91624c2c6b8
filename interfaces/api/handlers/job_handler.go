package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobupdate/domain/dto"
	"jobupdate/domain/models"
	"jobupdate/domain/repositories"
	"jobupdate/domain/services"
	"jobupdate/pkg/logger"
	"jobupdate/pkg/utils"
)

type JobHandler struct {
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// List returns a filtered, paginated page of jobs
func (h *JobHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var params dto.JobFilterRequest
	if err := c.QueryParser(&params); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	params.Normalize()

	jobs, total, err := h.jobService.ListJobs(ctx, &params)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list jobs", "error", err)
		return utils.InternalErrorResponse(c, "Failed to list jobs")
	}

	return utils.PaginatedSuccessResponse(c, dto.JobsToJobResponses(jobs), total, params.Page, params.Limit)
}

// GetBySlug returns one job and counts the view
func (h *JobHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	if slug == "" {
		return utils.BadRequestResponse(c, "Job slug is required")
	}

	job, err := h.jobService.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundResponse(c, "Job not found")
		}
		logger.ErrorContext(ctx, "Failed to get job", "slug", slug, "error", err)
		return utils.InternalErrorResponse(c, "Failed to get job")
	}

	return utils.SuccessResponse(c, dto.JobToJobResponse(job))
}

// Create manual admin entry
func (h *JobHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	job, err := h.jobService.CreateJob(ctx, &req)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			return utils.ConflictResponse(c, "A job with this title already exists")
		}
		logger.ErrorContext(ctx, "Job creation failed", "error", err)
		return utils.InternalErrorResponse(c, "Failed to create job")
	}

	logger.InfoContext(ctx, "Job created", "slug", job.Slug, "title", job.Title)
	return utils.CreatedResponse(c, dto.JobToJobResponse(job))
}

// UpdateStatus admin approval surface
func (h *JobHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	job, err := h.jobService.UpdateStatus(ctx, slug, models.JobStatus(req.Status))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundResponse(c, "Job not found")
		}
		logger.ErrorContext(ctx, "Status update failed", "slug", slug, "error", err)
		return utils.InternalErrorResponse(c, "Failed to update status")
	}

	logger.InfoContext(ctx, "Job status updated", "slug", slug, "status", job.Status)
	return utils.SuccessResponse(c, dto.JobToJobResponse(job))
}

// Stats aggregated counts plus recent automation runs
func (h *JobHandler) Stats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := h.jobService.GetStats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute stats", "error", err)
		return utils.InternalErrorResponse(c, "Failed to compute stats")
	}

	return utils.SuccessResponse(c, stats)
}
