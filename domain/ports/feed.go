package ports

import (
	"context"

	"jobupdate/domain/models"
)

// SourceFormat how a source's payload is parsed
type SourceFormat string

const (
	FormatRSS  SourceFormat = "rss"
	FormatHTML SourceFormat = "html"
	FormatJSON SourceFormat = "json"
)

// Source one configured external job source. Trust tier is explicit
// configuration, never inferred: trusted sources auto-publish, others enter
// as PENDING.
type Source struct {
	Name            string
	URL             string
	Format          SourceFormat
	DefaultCategory models.JobCategory
	Trusted         bool
	Priority        int
}

// SourceResult outcome for one source in a batch: candidates or an error,
// never both. One source failing must not abort the batch.
type SourceResult struct {
	Source     Source
	Candidates []*models.Candidate
	Err        error
}

// FeedFetcher retrieves and extracts all configured sources.
// Implementations bound parallelism and apply per-source timeouts; the
// returned slice always has one entry per source.
type FeedFetcher interface {
	FetchAll(ctx context.Context, sources []Source) []SourceResult
}
