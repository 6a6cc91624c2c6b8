package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobupdate/domain/dto"
	"jobupdate/domain/models"
	"jobupdate/domain/repositories"
)

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) repositories.JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	err := r.db.WithContext(ctx).Create(job).Error
	if err != nil && isUniqueViolation(err) {
		return repositories.ErrDuplicateSlug
	}
	return err
}

// isUniqueViolation detects the slug uniqueness constraint firing under a
// concurrent-insert race
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505")
}

func (r *JobRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *JobRepositoryImpl) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *JobRepositoryImpl) ListWithFilters(ctx context.Context, params *dto.JobFilterRequest) ([]*models.Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.State != "" {
		query = query.Where("state = ?", params.State)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR organization ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []*models.Job
	offset := (params.Page - 1) * params.Limit
	err := query.
		Order("created_at DESC").
		Offset(offset).Limit(params.Limit).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ?", models.JobStatusPublished).
		Where("(expires_at IS NOT NULL AND expires_at < ?) OR (last_date IS NOT NULL AND last_date < ?)", now, now).
		Update("status", models.JobStatusExpired)
	return result.RowsAffected, result.Error
}

func (r *JobRepositoryImpl) ArchiveExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ?", models.JobStatusExpired).
		Where("updated_at < ?", cutoff).
		Update("status", models.JobStatusArchived)
	return result.RowsAffected, result.Error
}

func (r *JobRepositoryImpl) ListByOrganizations(ctx context.Context, orgs []string) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Where("organization IN ?", orgs).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) UpdateOrganization(ctx context.Context, id uuid.UUID, organization string) error {
	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", id).
		Update("organization", organization).Error
}

func (r *JobRepositoryImpl) RefreshTodayFlag(ctx context.Context, midnight time.Time) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("is_today = ?", true).
		Update("is_today", false).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("created_at >= ? AND status = ?", midnight, models.JobStatusPublished).
		Update("is_today", true).Error
}

func (r *JobRepositoryImpl) ListUnposted(ctx context.Context, channel string, limit int) ([]*models.Job, error) {
	column, err := postedColumn(channel)
	if err != nil {
		return nil, err
	}

	var jobs []*models.Job
	dbErr := r.db.WithContext(ctx).
		Where("status = ?", models.JobStatusPublished).
		Where(column+" = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, dbErr
}

func (r *JobRepositoryImpl) MarkPosted(ctx context.Context, id uuid.UUID, channel string, postedAt time.Time) error {
	column, err := postedColumn(channel)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			column:         true,
			"published_at": postedAt,
		}).Error
}

func postedColumn(channel string) (string, error) {
	switch channel {
	case "telegram":
		return "telegram_posted", nil
	case "whatsapp":
		return "whatsapp_posted", nil
	}
	return "", errors.New("unknown channel: " + channel)
}

func (r *JobRepositoryImpl) CountByStatus(ctx context.Context) (map[models.JobStatus]int64, error) {
	type row struct {
		Status models.JobStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.JobStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *JobRepositoryImpl) CountByCategory(ctx context.Context) (map[models.JobCategory]int64, error) {
	type row struct {
		Category models.JobCategory
		Count    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.JobCategory]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Count
	}
	return counts, nil
}
