package serviceimpl

import (
	"context"
	"errors"
	"time"

	"jobupdate/domain/dto"
	"jobupdate/domain/models"
	"jobupdate/domain/ports"
	"jobupdate/domain/repositories"
	"jobupdate/domain/services"
	"jobupdate/infrastructure/redis"
	"jobupdate/pkg/classify"
	"jobupdate/pkg/config"
	"jobupdate/pkg/logger"
	"jobupdate/pkg/utils"
)

const pipelineLockKey = "lock:pipeline:fetch"

// ErrRunInProgress is returned when another instance holds the pipeline lock
var ErrRunInProgress = errors.New("pipeline run already in progress")

// PipelineServiceImpl runs one ingestion cycle end to end. Stages are
// independent: a source failure is recorded and the batch continues.
type PipelineServiceImpl struct {
	sources     []ports.Source
	fetcher     ports.FeedFetcher
	jobRepo     repositories.JobRepository
	logRepo     repositories.AutomationLogRepository
	lifecycle   services.LifecycleService
	publisher   services.PublishService
	bus         ports.EventBus // optional, nil means direct publisher calls
	redisClient *redis.Client  // optional, used for cross-instance run lock
	cfg         *config.FetchConfig
	now         func() time.Time
}

func NewPipelineService(
	sources []ports.Source,
	fetcher ports.FeedFetcher,
	jobRepo repositories.JobRepository,
	logRepo repositories.AutomationLogRepository,
	lifecycle services.LifecycleService,
	publisher services.PublishService,
	bus ports.EventBus,
	redisClient *redis.Client,
	cfg *config.FetchConfig,
) services.PipelineService {
	return &PipelineServiceImpl{
		sources:     sources,
		fetcher:     fetcher,
		jobRepo:     jobRepo,
		logRepo:     logRepo,
		lifecycle:   lifecycle,
		publisher:   publisher,
		bus:         bus,
		redisClient: redisClient,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Run executes fetch+ingest, then the maintenance sweep, then triggers
// channel posting for anything new
func (s *PipelineServiceImpl) Run(ctx context.Context) (*dto.RunResult, error) {
	result, err := s.Fetch(ctx)
	if err != nil {
		return result, err
	}

	sweep, err := s.lifecycle.Sweep(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Lifecycle sweep failed", "error", err)
	} else {
		result.Stats.Expired = sweep.Stats.Expired
		result.Stats.Archived = sweep.Stats.Archived
		result.Stats.Cleaned = sweep.Stats.Cleaned
		result.Errors = append(result.Errors, sweep.Errors...)
	}

	if result.Stats.Created > 0 {
		s.triggerAutoPost(ctx, result)
	}

	return result, nil
}

// triggerAutoPost hands new records off to the channel publisher, through the
// event bus when one is wired
func (s *PipelineServiceImpl) triggerAutoPost(ctx context.Context, result *dto.RunResult) {
	if s.bus != nil {
		event := &ports.RunEvent{
			RunType:   string(models.RunTypeFetchJobs),
			Created:   result.Stats.Created,
			Timestamp: s.now().Unix(),
		}
		if err := s.bus.PublishRunEvent(ctx, event); err != nil {
			logger.WarnContext(ctx, "Failed to publish run event, posting directly", "error", err)
		} else {
			return
		}
	}

	post, err := s.publisher.AutoPost(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Auto post failed", "error", err)
		return
	}
	result.Stats.Posted = post.Stats.Posted
}

// Fetch executes fetch+ingest only
func (s *PipelineServiceImpl) Fetch(ctx context.Context) (*dto.RunResult, error) {
	start := s.now()

	// one run at a time across all instances
	if s.redisClient != nil {
		locked, err := s.redisClient.AcquireLock(ctx, pipelineLockKey, s.cfg.RunBudget)
		if err != nil {
			logger.WarnContext(ctx, "Pipeline lock unavailable, proceeding unlocked", "error", err)
		} else if !locked {
			return &dto.RunResult{Success: false, Timestamp: start, Duration: "0s"}, ErrRunInProgress
		} else {
			defer func() {
				if err := s.redisClient.ReleaseLock(context.Background(), pipelineLockKey); err != nil {
					logger.WarnContext(ctx, "Failed to release pipeline lock", "error", err)
				}
			}()
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.RunBudget)
	defer cancel()

	stats := models.RunStats{}
	var runErrors models.RunErrors
	var sourceNames []string

	results := s.fetcher.FetchAll(runCtx, s.sources)
	failedSources := 0
	for _, res := range results {
		sourceNames = append(sourceNames, res.Source.Name)

		if res.Err != nil {
			runErrors = append(runErrors, models.RunError{Source: res.Source.Name, Message: res.Err.Error(), Timestamp: s.now()})
			stats.Errors++
			failedSources++
			continue
		}

		for _, c := range res.Candidates {
			stats.Fetched++
			s.ingest(runCtx, c, &stats)
		}
	}

	duration := s.now().Sub(start)

	status := models.RunStatusCompleted
	if failedSources == len(results) && len(results) > 0 {
		status = models.RunStatusFailed
	} else if stats.Errors > 0 {
		status = models.RunStatusPartial
	}

	if err := s.logRepo.Create(ctx, &models.AutomationLog{
		RunType:      models.RunTypeFetchJobs,
		Status:       status,
		Stats:        stats,
		Sources:      sourceNames,
		ErrorDetails: runErrors,
		DurationMS:   duration.Milliseconds(),
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to write automation log", "runType", models.RunTypeFetchJobs, "error", err)
	}

	if s.redisClient != nil && stats.Created > 0 {
		_ = s.redisClient.Del(ctx, statsCacheKey)
	}

	logger.InfoContext(ctx, "Fetch cycle finished",
		"fetched", stats.Fetched, "created", stats.Created,
		"duplicates", stats.Duplicates, "skipped", stats.Skipped,
		"errors", stats.Errors, "duration", duration)

	return &dto.RunResult{
		Success:   status != models.RunStatusFailed,
		Timestamp: start,
		Stats:     stats,
		Sources:   sourceNames,
		Errors:    runErrors,
		Duration:  duration.String(),
	}, nil
}

// ingest runs one candidate through relevancy, quality, dedupe and insert.
// Every candidate ends in exactly one counter.
func (s *PipelineServiceImpl) ingest(ctx context.Context, c *models.Candidate, stats *models.RunStats) {
	relevant, reason := classify.IsRelevant(c.Title, c.Description)
	if !relevant {
		logger.DebugContext(ctx, "Irrelevant candidate", "title", utils.Truncate(c.Title, 50), "reason", reason)
		stats.Skipped++
		return
	}

	quality := classify.ValidateQuality(c)
	if !quality.IsValid {
		logger.DebugContext(ctx, "Low quality candidate", "title", utils.Truncate(c.Title, 50), "errors", quality.Errors)
		stats.Skipped++
		return
	}

	slug := utils.MakeJobSlug(c.Title)
	exists, err := s.jobRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		stats.Errors++
		return
	}
	if exists {
		stats.Duplicates++
		return
	}

	job := s.candidateToJob(c, slug)
	if err := s.jobRepo.Create(ctx, job); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			// lost the insert race to a concurrent run, same outcome as the
			// probe above
			stats.Duplicates++
			return
		}
		logger.WarnContext(ctx, "Failed to insert job", "slug", slug, "error", err)
		stats.Errors++
		return
	}

	logger.InfoContext(ctx, "New job ingested", "slug", slug, "category", job.Category, "status", job.Status)
	stats.Created++
}

// candidateToJob maps a classified candidate to a persistent record. Trusted
// sources publish immediately, everything else waits for review.
func (s *PipelineServiceImpl) candidateToJob(c *models.Candidate, slug string) *models.Job {
	status := models.JobStatusPending
	if c.Trusted {
		status = models.JobStatusPublished
	}

	expiresAt := c.LastDate
	if expiresAt == nil {
		t := s.now().Add(30 * 24 * time.Hour)
		expiresAt = &t
	}

	return &models.Job{
		Slug:          slug,
		Title:         c.Title,
		Organization:  c.Organization,
		PostName:      c.PostName,
		Category:      c.Category,
		SubCategory:   c.SubCategory,
		Qualification: c.Qualification,
		Location:      c.Location,
		State:         c.State,
		Experience:    c.Experience,
		Skills:        c.Skills,
		Salary:        c.Salary,
		Vacancies:     c.Vacancies,
		LastDate:      c.LastDate,
		ExpiresAt:     expiresAt,
		Status:        status,
		IsVerified:    c.Trusted,
		Source:        models.SourceAutomated,
		SourceURL:     c.SourceURL,
		ApplyLink:     c.ApplyLink,
		Description:   c.Description,
		Tags:          c.Tags,
	}
}
