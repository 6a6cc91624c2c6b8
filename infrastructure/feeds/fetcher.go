package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"jobupdate/domain/models"
	"jobupdate/domain/ports"
	"jobupdate/pkg/classify"
	"jobupdate/pkg/config"
	"jobupdate/pkg/logger"
)

const maxBodySize = 5 << 20 // 5 MB per source response

// HTTPFetcher retrieves all configured sources over HTTP with bounded
// parallelism. Each source gets its own timeout so one slow endpoint never
// stalls the batch.
type HTTPFetcher struct {
	cfg       *config.FetchConfig
	client    *http.Client
	extractor *Extractor
}

func NewHTTPFetcher(cfg *config.FetchConfig) ports.FeedFetcher {
	client := &http.Client{
		Timeout: cfg.Timeout,
	}
	return &HTTPFetcher{
		cfg:       cfg,
		client:    client,
		extractor: NewExtractor(),
	}
}

// FetchAll fetches every source concurrently and returns one result per
// source, in input order. Source failures are captured in the result, never
// propagated as a batch error.
func (f *HTTPFetcher) FetchAll(ctx context.Context, sources []ports.Source) []ports.SourceResult {
	results := make([]ports.SourceResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.cfg.Concurrency)

	var mu sync.Mutex
	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			candidates, err := f.fetchSource(gctx, source)
			mu.Lock()
			results[i] = ports.SourceResult{Source: source, Candidates: candidates, Err: err}
			mu.Unlock()
			if err != nil {
				logger.WarnContext(gctx, "Source fetch failed", "source", source.Name, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (f *HTTPFetcher) fetchSource(ctx context.Context, source ports.Source) ([]*models.Candidate, error) {
	body, err := f.get(ctx, source.URL, acceptFor(source.Format))
	if err != nil {
		return nil, err
	}

	candidates, err := f.extractor.Extract(source, body)
	if err != nil {
		return nil, err
	}

	// Resolve apply links that point at news articles to the official
	// notification behind them, spaced out to stay polite
	for _, c := range candidates {
		if c.ApplyLink != "" && classify.IsNewsLink(c.ApplyLink) {
			if official := f.resolveOfficialLink(ctx, c.ApplyLink); official != c.ApplyLink {
				c.ApplyLink = official
			}
			SleepBetween(ctx, 200*time.Millisecond)
		}
	}

	logger.InfoContext(ctx, "Source fetched", "source", source.Name, "candidates", len(candidates))
	return candidates, nil
}

func (f *HTTPFetcher) get(ctx context.Context, url, accept string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// resolveOfficialLink fetches a news article and looks for the official
// notification link inside it. Gov domains win, then career portals, then
// PDF notices. Falls back to the article URL on any failure.
func (f *HTTPFetcher) resolveOfficialLink(ctx context.Context, newsURL string) string {
	body, err := f.get(ctx, newsURL, "text/html")
	if err != nil {
		return newsURL
	}

	links := extractLinks(body)
	var potential []string
	for _, link := range links {
		if !classify.IsNewsLink(link) {
			potential = append(potential, link)
		}
	}

	for _, link := range potential {
		if classify.IsOfficialLink(link) {
			return link
		}
	}
	for _, link := range potential {
		lower := strings.ToLower(link)
		if strings.Contains(lower, "careers.") || strings.Contains(lower, "/careers/") ||
			strings.Contains(lower, "myworkdayjobs") || strings.Contains(lower, "taleo.net") {
			return link
		}
	}
	for _, link := range potential {
		if strings.HasSuffix(strings.ToLower(link), ".pdf") {
			return link
		}
	}

	return newsURL
}

func acceptFor(format ports.SourceFormat) string {
	switch format {
	case ports.FormatJSON:
		return "application/json"
	case ports.FormatHTML:
		return "text/html"
	}
	return "application/rss+xml, application/xml, text/xml"
}

// SleepBetween is a cancellable pause used to space outbound requests
func SleepBetween(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
