package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobupdate/domain/dto"
	"jobupdate/domain/models"
	"jobupdate/domain/ports"
	"jobupdate/domain/repositories"
)

// memJobRepo is an in-memory JobRepository used by the service tests
type memJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job // keyed by slug
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *memJobRepo) Create(_ context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[job.Slug]; exists {
		return repositories.ErrDuplicateSlug
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	job.UpdatedAt = job.CreatedAt
	r.jobs[job.Slug] = job
	return nil
}

func (r *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, errNotFound
}

func (r *memJobRepo) GetBySlug(_ context.Context, slug string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[slug]; ok {
		return j, nil
	}
	return nil, errNotFound
}

func (r *memJobRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.jobs[slug]
	return ok, nil
}

func (r *memJobRepo) Update(_ context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.Slug] = job
	return nil
}

func (r *memJobRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == id {
			j.Status = status
			return nil
		}
	}
	return errNotFound
}

func (r *memJobRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == id {
			j.Views++
			return nil
		}
	}
	return errNotFound
}

func (r *memJobRepo) ListWithFilters(_ context.Context, params *dto.JobFilterRequest) ([]*models.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Job
	for _, j := range r.jobs {
		if params.Category != "" && string(j.Category) != params.Category {
			continue
		}
		if params.Status != "" && string(j.Status) != params.Status {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, j)
	}
	return out, int64(len(out)), nil
}

func (r *memJobRepo) ExpireDue(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.jobs {
		if j.Status == models.JobStatusPublished && j.IsExpiredAt(now) {
			j.Status = models.JobStatusExpired
			j.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func (r *memJobRepo) ArchiveExpiredBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.jobs {
		if j.Status == models.JobStatusExpired && j.UpdatedAt.Before(cutoff) {
			j.Status = models.JobStatusArchived
			n++
		}
	}
	return n, nil
}

func (r *memJobRepo) ListByOrganizations(_ context.Context, orgs []string) ([]*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Job
	for _, j := range r.jobs {
		for _, org := range orgs {
			if j.Organization == org {
				out = append(out, j)
				break
			}
		}
	}
	return out, nil
}

func (r *memJobRepo) UpdateOrganization(_ context.Context, id uuid.UUID, organization string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == id {
			j.Organization = organization
			return nil
		}
	}
	return errNotFound
}

func (r *memJobRepo) RefreshTodayFlag(_ context.Context, midnight time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		j.IsToday = j.Status == models.JobStatusPublished && !j.CreatedAt.Before(midnight)
	}
	return nil
}

func (r *memJobRepo) ListUnposted(_ context.Context, channel string, limit int) ([]*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Job
	for _, j := range r.jobs {
		if j.Status == models.JobStatusPublished && !j.PostedTo(channel) {
			out = append(out, j)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *memJobRepo) MarkPosted(_ context.Context, id uuid.UUID, channel string, postedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == id {
			switch channel {
			case "telegram":
				j.TelegramPosted = true
			case "whatsapp":
				j.WhatsappPosted = true
			}
			j.PublishedAt = &postedAt
			return nil
		}
	}
	return errNotFound
}

func (r *memJobRepo) CountByStatus(_ context.Context) (map[models.JobStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[models.JobStatus]int64)
	for _, j := range r.jobs {
		out[j.Status]++
	}
	return out, nil
}

func (r *memJobRepo) CountByCategory(_ context.Context) (map[models.JobCategory]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[models.JobCategory]int64)
	for _, j := range r.jobs {
		out[j.Category]++
	}
	return out, nil
}

var errNotFound = errors.New("not found")

// memLogRepo records automation logs in memory
type memLogRepo struct {
	mu   sync.Mutex
	logs []*models.AutomationLog
}

func (r *memLogRepo) Create(_ context.Context, log *models.AutomationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

func (r *memLogRepo) ListRecent(_ context.Context, limit int) ([]*models.AutomationLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.logs) < limit {
		limit = len(r.logs)
	}
	return r.logs[len(r.logs)-limit:], nil
}

func (r *memLogRepo) lastByType(runType models.RunType) *models.AutomationLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].RunType == runType {
			return r.logs[i]
		}
	}
	return nil
}

// fakeFetcher returns canned results regardless of the source list
type fakeFetcher struct {
	results []ports.SourceResult
}

func (f *fakeFetcher) FetchAll(_ context.Context, _ []ports.Source) []ports.SourceResult {
	return f.results
}

// fakeChannel records sends and can be told to fail
type fakeChannel struct {
	name       string
	configured bool
	fail       bool
	mu         sync.Mutex
	sent       []string // slugs in send order
}

func (c *fakeChannel) Name() string       { return c.name }
func (c *fakeChannel) IsConfigured() bool { return c.configured }

func (c *fakeChannel) Send(_ context.Context, job *models.Job) (string, error) {
	if c.fail {
		return "", errSendFailed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, job.Slug)
	return "msg-1", nil
}

var errSendFailed = &sendError{}

type sendError struct{}

func (e *sendError) Error() string { return "send failed" }
