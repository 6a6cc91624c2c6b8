package repositories

import (
	"context"

	"jobupdate/domain/models"
)

// AutomationLogRepository is append-only: rows are created once per run and
// never updated
type AutomationLogRepository interface {
	Create(ctx context.Context, log *models.AutomationLog) error
	ListRecent(ctx context.Context, limit int) ([]*models.AutomationLog, error)
}
