package dto

import (
	"time"

	"jobupdate/domain/models"
)

// RunResult returned synchronously by the cron trigger endpoints
type RunResult struct {
	Success   bool             `json:"success"`
	Timestamp time.Time        `json:"timestamp"`
	Stats     models.RunStats  `json:"stats"`
	Sources   []string         `json:"sources,omitempty"`
	Errors    models.RunErrors `json:"errors,omitempty"`
	Duration  string           `json:"duration"`
}

// StatsResponse aggregated counts for the observability surface
type StatsResponse struct {
	ByStatus   map[string]int64        `json:"byStatus"`
	ByCategory map[string]int64        `json:"byCategory"`
	RecentRuns []*models.AutomationLog `json:"recentRuns"`
}
