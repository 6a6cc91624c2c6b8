package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jobupdate/domain/dto"
	"jobupdate/domain/models"
)

// ErrDuplicateSlug is returned by Create when the slug already exists. A race
// between two pipeline runs resolves here: the storage engine's uniqueness
// constraint is the final arbiter and the losing insert is treated as SKIP.
var ErrDuplicateSlug = errors.New("job with this slug already exists")

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	GetBySlug(ctx context.Context, slug string) (*models.Job, error)
	// ExistsBySlug is the dedupe probe; cheaper than a full fetch
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, job *models.Job) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// ListWithFilters serves the read API: category/status/state/search
	// filters with pagination
	ListWithFilters(ctx context.Context, params *dto.JobFilterRequest) ([]*models.Job, int64, error)

	// ExpireDue moves PUBLISHED records whose deadline passed to EXPIRED;
	// returns the number of rows affected
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
	// ArchiveExpiredBefore moves EXPIRED records older than the cutoff to
	// ARCHIVED
	ArchiveExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// ListByOrganizations fetches records for the organization cleanup sweep
	ListByOrganizations(ctx context.Context, orgs []string) ([]*models.Job, error)
	UpdateOrganization(ctx context.Context, id uuid.UUID, organization string) error
	// RefreshTodayFlag clears is_today everywhere, then sets it on PUBLISHED
	// records created since the given midnight
	RefreshTodayFlag(ctx context.Context, midnight time.Time) error

	// ListUnposted returns recent PUBLISHED records whose channel flag is
	// still false, newest first, bounded by limit
	ListUnposted(ctx context.Context, channel string, limit int) ([]*models.Job, error)
	// MarkPosted sets the channel's posted flag; called only after a positive
	// delivery acknowledgment
	MarkPosted(ctx context.Context, id uuid.UUID, channel string, postedAt time.Time) error

	CountByStatus(ctx context.Context) (map[models.JobStatus]int64, error)
	CountByCategory(ctx context.Context) (map[models.JobCategory]int64, error)
}
