package services

import (
	"context"

	"jobupdate/domain/dto"
)

// PipelineService orchestrates one ingestion cycle: fetch all sources,
// extract and classify, dedupe by slug, insert, run the maintenance sweep,
// write the audit log, and trigger channel posting. Each stage is
// independently retriable; one source's failure never aborts the batch.
type PipelineService interface {
	// Run executes the full cycle
	Run(ctx context.Context) (*dto.RunResult, error)
	// Fetch executes fetch+ingest only (no sweep, no posting)
	Fetch(ctx context.Context) (*dto.RunResult, error)
}

// LifecycleService manages status transitions over time. Transitions are
// monotonic: PENDING → PUBLISHED → EXPIRED → ARCHIVED, never reversed
// automatically.
type LifecycleService interface {
	// Sweep expires due records, archives stale ones, rewrites aggregator
	// organizations and refreshes the today flag; idempotent
	Sweep(ctx context.Context) (*dto.RunResult, error)
}

// PublishService fans out PUBLISHED records to messaging channels. The
// per-channel posted flag is the sole idempotency gate: it is re-checked
// immediately before each send and set only after a positive delivery ack.
type PublishService interface {
	// AutoPost posts recent unposted records to every configured channel
	AutoPost(ctx context.Context) (*dto.RunResult, error)
	// ForcePost bounded recovery posting, capped at a recent window
	ForcePost(ctx context.Context, limit int) (*dto.RunResult, error)
	// PostJob posts one record to every configured channel
	PostJob(ctx context.Context, slug string) error
}
