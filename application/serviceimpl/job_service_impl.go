package serviceimpl

import (
	"context"
	"time"

	"jobupdate/domain/dto"
	"jobupdate/domain/models"
	"jobupdate/domain/repositories"
	"jobupdate/domain/services"
	"jobupdate/infrastructure/redis"
	"jobupdate/pkg/logger"
	"jobupdate/pkg/utils"
)

const (
	statsCacheKey = "stats:overview"
	statsCacheTTL = 5 * time.Minute
)

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	logRepo     repositories.AutomationLogRepository
	redisClient *redis.Client // optional, stats are computed from DB when nil
}

func NewJobService(
	jobRepo repositories.JobRepository,
	logRepo repositories.AutomationLogRepository,
	redisClient *redis.Client,
) services.JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		logRepo:     logRepo,
		redisClient: redisClient,
	}
}

func (s *JobServiceImpl) ListJobs(ctx context.Context, params *dto.JobFilterRequest) ([]*models.Job, int64, error) {
	params.Normalize()
	return s.jobRepo.ListWithFilters(ctx, params)
}

func (s *JobServiceImpl) GetBySlug(ctx context.Context, slug string) (*models.Job, error) {
	job, err := s.jobRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// view counting is best effort, never fails the read
	if err := s.jobRepo.IncrementViews(ctx, job.ID); err != nil {
		logger.WarnContext(ctx, "Failed to increment views", "slug", slug, "error", err)
	}

	return job, nil
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	status := models.JobStatusPending
	if req.Publish {
		status = models.JobStatusPublished
	}

	expiresAt := req.LastDate
	if expiresAt == nil {
		t := time.Now().Add(30 * 24 * time.Hour)
		expiresAt = &t
	}

	job := &models.Job{
		Slug:          utils.MakeJobSlug(req.Title),
		Title:         req.Title,
		Organization:  req.Organization,
		Category:      models.JobCategory(req.Category),
		Qualification: req.Qualification,
		Location:      req.Location,
		Experience:    req.Experience,
		Skills:        req.Skills,
		Salary:        req.Salary,
		Vacancies:     req.Vacancies,
		AgeLimit:      req.AgeLimit,
		LastDate:      req.LastDate,
		ExpiresAt:     expiresAt,
		Status:        status,
		IsVerified:    true,
		Source:        models.SourceManual,
		SourceURL:     req.SourceURL,
		ApplyLink:     req.ApplyLink,
		Description:   req.Description,
	}
	if job.Location == "" {
		job.Location = "All India"
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Job created manually", "slug", job.Slug, "status", job.Status)
	s.invalidateStats(ctx)
	return job, nil
}

func (s *JobServiceImpl) UpdateStatus(ctx context.Context, slug string, status models.JobStatus) (*models.Job, error) {
	job, err := s.jobRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// admin override may move backwards; only note it
	if !job.Status.CanTransitionTo(status) && job.Status != status {
		logger.WarnContext(ctx, "Non-monotonic status override", "slug", slug, "from", job.Status, "to", status)
	}

	if err := s.jobRepo.UpdateStatus(ctx, job.ID, status); err != nil {
		return nil, err
	}

	job.Status = status
	s.invalidateStats(ctx)
	return job, nil
}

func (s *JobServiceImpl) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	if s.redisClient != nil {
		var cached dto.StatsResponse
		if err := s.redisClient.GetJSON(ctx, statsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	byStatus, err := s.jobRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.jobRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	recentRuns, err := s.logRepo.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		ByStatus:   make(map[string]int64, len(byStatus)),
		ByCategory: make(map[string]int64, len(byCategory)),
		RecentRuns: recentRuns,
	}
	for k, v := range byStatus {
		stats.ByStatus[string(k)] = v
	}
	for k, v := range byCategory {
		stats.ByCategory[string(k)] = v
	}

	if s.redisClient != nil {
		if err := s.redisClient.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
			logger.WarnContext(ctx, "Failed to cache stats", "error", err)
		}
	}

	return stats, nil
}

func (s *JobServiceImpl) invalidateStats(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, statsCacheKey); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate stats cache", "error", err)
	}
}
