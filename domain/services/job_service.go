package services

import (
	"context"

	"jobupdate/domain/dto"
	"jobupdate/domain/models"
)

// JobService read API plus the admin manual-entry and approval surface
type JobService interface {
	ListJobs(ctx context.Context, params *dto.JobFilterRequest) ([]*models.Job, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateStatus(ctx context.Context, slug string, status models.JobStatus) (*models.Job, error)
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}
