package postgres

import (
	"context"

	"gorm.io/gorm"

	"jobupdate/domain/models"
	"jobupdate/domain/repositories"
)

type AutomationLogRepositoryImpl struct {
	db *gorm.DB
}

func NewAutomationLogRepository(db *gorm.DB) repositories.AutomationLogRepository {
	return &AutomationLogRepositoryImpl{db: db}
}

func (r *AutomationLogRepositoryImpl) Create(ctx context.Context, log *models.AutomationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *AutomationLogRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*models.AutomationLog, error) {
	var logs []*models.AutomationLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
