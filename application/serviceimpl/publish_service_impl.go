package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jobupdate/domain/dto"
	"jobupdate/domain/models"
	"jobupdate/domain/ports"
	"jobupdate/domain/repositories"
	"jobupdate/domain/services"
	"jobupdate/pkg/logger"
)

const (
	autoPostLimit  = 5  // per channel per cycle, keeps channel rate limits happy
	forcePostCap   = 20 // hard ceiling for recovery posting
	interSendPause = 2 * time.Second
)

// PublishServiceImpl fans PUBLISHED records out to messaging channels. The
// per-channel posted flag is the only idempotency gate: re-checked right
// before each send, set only after the channel acknowledged delivery.
type PublishServiceImpl struct {
	jobRepo  repositories.JobRepository
	logRepo  repositories.AutomationLogRepository
	channels []ports.ChannelPublisher
	now      func() time.Time
	pause    time.Duration
}

func NewPublishService(
	jobRepo repositories.JobRepository,
	logRepo repositories.AutomationLogRepository,
	channels []ports.ChannelPublisher,
) services.PublishService {
	return &PublishServiceImpl{
		jobRepo:  jobRepo,
		logRepo:  logRepo,
		channels: channels,
		now:      time.Now,
		pause:    interSendPause,
	}
}

func (s *PublishServiceImpl) AutoPost(ctx context.Context) (*dto.RunResult, error) {
	return s.postBatch(ctx, autoPostLimit, models.RunTypeTelegramPost)
}

func (s *PublishServiceImpl) ForcePost(ctx context.Context, limit int) (*dto.RunResult, error) {
	if limit <= 0 || limit > forcePostCap {
		limit = forcePostCap
	}
	return s.postBatch(ctx, limit, models.RunTypeForcePost)
}

func (s *PublishServiceImpl) postBatch(ctx context.Context, limit int, runType models.RunType) (*dto.RunResult, error) {
	start := s.now()
	stats := models.RunStats{}
	var runErrors models.RunErrors

	for _, channel := range s.channels {
		if !channel.IsConfigured() {
			continue
		}

		jobs, err := s.jobRepo.ListUnposted(ctx, channel.Name(), limit)
		if err != nil {
			runErrors = append(runErrors, models.RunError{Source: channel.Name(), Message: err.Error(), Timestamp: s.now()})
			stats.Errors++
			continue
		}

		for _, job := range jobs {
			if err := s.postOne(ctx, channel, job.ID); err != nil {
				runErrors = append(runErrors, models.RunError{Source: channel.Name(), Message: err.Error(), Timestamp: s.now()})
				stats.Errors++
			} else {
				stats.Posted++
			}

			select {
			case <-ctx.Done():
				return s.finishBatch(ctx, runType, start, stats, runErrors), ctx.Err()
			case <-time.After(s.pause):
			}
		}
	}

	return s.finishBatch(ctx, runType, start, stats, runErrors), nil
}

// postOne sends a single record to one channel. The record is re-read and the
// flag re-checked immediately before sending so a concurrent run cannot cause
// a double post.
func (s *PublishServiceImpl) postOne(ctx context.Context, channel ports.ChannelPublisher, id uuid.UUID) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if job.PostedTo(channel.Name()) {
		return nil
	}
	if !job.IsPublished() {
		return nil
	}

	messageID, err := channel.Send(ctx, job)
	if err != nil {
		// flag stays false, the next cycle retries
		return err
	}

	if err := s.jobRepo.MarkPosted(ctx, job.ID, channel.Name(), s.now()); err != nil {
		// delivered but unrecorded: the next cycle may repost, which is the
		// accepted failure mode versus silently losing posts
		logger.ErrorContext(ctx, "Sent but failed to mark posted", "slug", job.Slug, "channel", channel.Name(), "error", err)
		return err
	}

	logger.InfoContext(ctx, "Posted job", "slug", job.Slug, "channel", channel.Name(), "messageId", messageID)
	return nil
}

func (s *PublishServiceImpl) finishBatch(ctx context.Context, runType models.RunType, start time.Time, stats models.RunStats, runErrors models.RunErrors) *dto.RunResult {
	duration := s.now().Sub(start)

	status := models.RunStatusCompleted
	if stats.Errors > 0 && stats.Posted == 0 {
		status = models.RunStatusFailed
	} else if stats.Errors > 0 {
		status = models.RunStatusPartial
	}

	if err := s.logRepo.Create(ctx, &models.AutomationLog{
		RunType:      runType,
		Status:       status,
		Stats:        stats,
		ErrorDetails: runErrors,
		DurationMS:   duration.Milliseconds(),
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to write automation log", "runType", runType, "error", err)
	}

	logger.InfoContext(ctx, "Post cycle finished", "runType", runType, "posted", stats.Posted, "errors", stats.Errors)

	return &dto.RunResult{
		Success:   status != models.RunStatusFailed,
		Timestamp: start,
		Stats:     stats,
		Errors:    runErrors,
		Duration:  duration.String(),
	}
}

func (s *PublishServiceImpl) PostJob(ctx context.Context, slug string) error {
	job, err := s.jobRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	var errs []error
	for _, channel := range s.channels {
		if !channel.IsConfigured() || job.PostedTo(channel.Name()) {
			continue
		}
		if err := s.postOne(ctx, channel, job.ID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
