package serviceimpl

import (
	"context"
	"time"

	"jobupdate/domain/dto"
	"jobupdate/domain/models"
	"jobupdate/domain/repositories"
	"jobupdate/domain/services"
	"jobupdate/infrastructure/redis"
	"jobupdate/pkg/classify"
	"jobupdate/pkg/config"
	"jobupdate/pkg/logger"
)

// LifecycleServiceImpl runs the maintenance sweep. The clock is injected so
// expiry boundaries are testable.
type LifecycleServiceImpl struct {
	jobRepo     repositories.JobRepository
	logRepo     repositories.AutomationLogRepository
	redisClient *redis.Client
	cfg         *config.FetchConfig
	now         func() time.Time
}

func NewLifecycleService(
	jobRepo repositories.JobRepository,
	logRepo repositories.AutomationLogRepository,
	redisClient *redis.Client,
	cfg *config.FetchConfig,
) services.LifecycleService {
	return &LifecycleServiceImpl{
		jobRepo:     jobRepo,
		logRepo:     logRepo,
		redisClient: redisClient,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Sweep is idempotent: a second run over the same data finds nothing to do
func (s *LifecycleServiceImpl) Sweep(ctx context.Context) (*dto.RunResult, error) {
	start := s.now()
	stats := models.RunStats{}
	var runErrors models.RunErrors

	expired, err := s.jobRepo.ExpireDue(ctx, start)
	if err != nil {
		runErrors = append(runErrors, models.RunError{Source: "expire", Message: err.Error(), Timestamp: s.now()})
		stats.Errors++
	}
	stats.Expired = int(expired)

	cutoff := start.Add(-time.Duration(s.cfg.RetentionDays) * 24 * time.Hour)
	archived, err := s.jobRepo.ArchiveExpiredBefore(ctx, cutoff)
	if err != nil {
		runErrors = append(runErrors, models.RunError{Source: "archive", Message: err.Error(), Timestamp: s.now()})
		stats.Errors++
	}
	stats.Archived = int(archived)

	cleaned, err := s.cleanupOrganizations(ctx)
	if err != nil {
		runErrors = append(runErrors, models.RunError{Source: "org-cleanup", Message: err.Error(), Timestamp: s.now()})
		stats.Errors++
	}
	stats.Cleaned = cleaned

	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	if err := s.jobRepo.RefreshTodayFlag(ctx, midnight); err != nil {
		runErrors = append(runErrors, models.RunError{Source: "today-flag", Message: err.Error(), Timestamp: s.now()})
		stats.Errors++
	}

	duration := s.now().Sub(start)
	status := models.RunStatusCompleted
	if stats.Errors > 0 {
		status = models.RunStatusPartial
	}

	if err := s.logRepo.Create(ctx, &models.AutomationLog{
		RunType:      models.RunTypeCleanup,
		Status:       status,
		Stats:        stats,
		ErrorDetails: runErrors,
		DurationMS:   duration.Milliseconds(),
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to write automation log", "runType", models.RunTypeCleanup, "error", err)
	}

	if s.redisClient != nil && (stats.Expired > 0 || stats.Archived > 0) {
		_ = s.redisClient.Del(ctx, statsCacheKey)
	}

	logger.InfoContext(ctx, "Lifecycle sweep finished",
		"expired", stats.Expired, "archived", stats.Archived,
		"cleaned", stats.Cleaned, "errors", stats.Errors)

	return &dto.RunResult{
		Success:   status != models.RunStatusFailed,
		Timestamp: start,
		Stats:     stats,
		Errors:    runErrors,
		Duration:  duration.String(),
	}, nil
}

// cleanupOrganizations rewrites records whose organization is a generic
// aggregator name with one derived from the title
func (s *LifecycleServiceImpl) cleanupOrganizations(ctx context.Context) (int, error) {
	jobs, err := s.jobRepo.ListByOrganizations(ctx, classify.AggregatorOrganizations())
	if err != nil {
		return 0, err
	}

	cleaned := 0
	for _, job := range jobs {
		derived := classify.DeriveOrganizationFromTitle(job.Title)
		if derived == job.Organization {
			continue
		}
		if err := s.jobRepo.UpdateOrganization(ctx, job.ID, derived); err != nil {
			logger.WarnContext(ctx, "Failed to rewrite organization", "slug", job.Slug, "error", err)
			continue
		}
		cleaned++
	}
	return cleaned, nil
}
