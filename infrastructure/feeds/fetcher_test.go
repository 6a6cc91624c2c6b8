package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobupdate/domain/models"
	"jobupdate/domain/ports"
	"jobupdate/pkg/config"
)

func testFetcherConfig() *config.FetchConfig {
	return &config.FetchConfig{
		Timeout:     2 * time.Second,
		RunBudget:   30 * time.Second,
		Concurrency: 2,
		UserAgent:   "jobupdate-test/1.0",
	}
}

func rssBody(title, link string) string {
	return fmt.Sprintf(`<?xml version="1.0"?><rss version="2.0"><channel><title>f</title>
<item><title>%s</title><link>%s</link><description>Recruitment notification, apply online before the last date.</description></item>
</channel></rss>`, title, link)
}

func TestFetchAll_OneResultPerSourceInOrder(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody("SSC CGL Recruitment 2026 Notification", "https://ssc.gov.in/cgl"))
	}))
	defer good.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	sources := []ports.Source{
		{Name: "Good Feed", URL: good.URL, Format: ports.FormatRSS, DefaultCategory: models.CategoryGovt, Trusted: true},
		{Name: "Broken Feed", URL: broken.URL, Format: ports.FormatRSS},
		{Name: "Good Feed 2", URL: good.URL, Format: ports.FormatRSS, DefaultCategory: models.CategoryGovt},
	}

	f := NewHTTPFetcher(testFetcherConfig())
	results := f.FetchAll(context.Background(), sources)

	if len(results) != len(sources) {
		t.Fatalf("got %d results, want %d", len(results), len(sources))
	}
	for i, r := range results {
		if r.Source.Name != sources[i].Name {
			t.Errorf("results[%d] = %s, want %s (order must match input)", i, r.Source.Name, sources[i].Name)
		}
	}
	if results[0].Err != nil {
		t.Errorf("Good Feed: %v", results[0].Err)
	}
	if len(results[0].Candidates) != 1 {
		t.Errorf("Good Feed candidates = %d, want 1", len(results[0].Candidates))
	}
	if results[1].Err == nil {
		t.Error("Broken Feed must carry its error in the result")
	}
	if results[2].Err != nil {
		t.Errorf("a failing source must not poison the rest: %v", results[2].Err)
	}
}

func TestFetchAll_SlowSourceTimesOutAlone(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, rssBody("Never Arrives", "https://example.com/x"))
	}))
	defer slow.Close()

	fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody("Railway Group D Recruitment Notification", "https://rrb.gov.in/d"))
	}))
	defer fast.Close()

	cfg := testFetcherConfig()
	cfg.Timeout = 100 * time.Millisecond

	f := NewHTTPFetcher(cfg)
	results := f.FetchAll(context.Background(), []ports.Source{
		{Name: "Slow", URL: slow.URL, Format: ports.FormatRSS},
		{Name: "Fast", URL: fast.URL, Format: ports.FormatRSS},
	})

	if results[0].Err == nil {
		t.Error("slow source should have timed out")
	}
	if results[1].Err != nil {
		t.Errorf("fast source: %v", results[1].Err)
	}
	if len(results[1].Candidates) != 1 {
		t.Errorf("fast source candidates = %d, want 1", len(results[1].Candidates))
	}
}

func TestFetchAll_SetsRequestHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, rssBody("SSC MTS Recruitment Notification", "https://ssc.gov.in/mts"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(testFetcherConfig())
	f.FetchAll(context.Background(), []ports.Source{
		{Name: "Feed", URL: srv.URL, Format: ports.FormatRSS},
	})

	if gotUA != "jobupdate-test/1.0" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if gotAccept != "application/rss+xml, application/xml, text/xml" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestFetchSource_ResolvesOfficialLinkBehindNewsArticle(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// article URL contains a news host marker so link resolution kicks in
	articlePath := "/timesofindia/ssc-story"
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody("SSC CGL Recruitment 2026 Notification", srv.URL+articlePath))
	})
	mux.HandleFunc(articlePath, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
<a href="https://timesofindia.indiatimes.com/related">related coverage</a>
<a href="https://ssc.gov.in/cgl-apply">official notification</a>
</body></html>`)
	})

	cfg := testFetcherConfig()
	f := NewHTTPFetcher(cfg).(*HTTPFetcher)

	candidates, err := f.fetchSource(context.Background(), ports.Source{
		Name: "News Feed", URL: srv.URL + "/feed", Format: ports.FormatRSS,
	})
	if err != nil {
		t.Fatalf("fetchSource: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(candidates))
	}
	if candidates[0].ApplyLink != "https://ssc.gov.in/cgl-apply" {
		t.Errorf("applyLink = %q, want the official domain link", candidates[0].ApplyLink)
	}
}

func TestResolveOfficialLink_FallsBackToArticleOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(testFetcherConfig()).(*HTTPFetcher)

	article := srv.URL + "/gone"
	if got := f.resolveOfficialLink(context.Background(), article); got != article {
		t.Errorf("resolveOfficialLink = %q, want the article URL back", got)
	}
}
