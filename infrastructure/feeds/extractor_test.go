package feeds

import (
	"testing"

	"jobupdate/domain/models"
	"jobupdate/domain/ports"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Job Feed</title>
<item>
<title>SSC CGL Recruitment 2026: Apply Online for 17727 Posts</title>
<link>https://ssc.gov.in/cgl-2026</link>
<description>Staff Selection Commission invites applications. Graduate candidates can apply before the last date. Locations include Delhi.</description>
<pubDate>Mon, 02 Mar 2026 09:00:00 +0530</pubDate>
</item>
<item>
<title></title>
<link>https://example.com/no-title</link>
</item>
<item>
<title>Railway Group D Vacancy Notification</title>
<link>https://rrb.gov.in/group-d</link>
<description>Indian Railways recruitment for fresher candidates, 10th pass eligible.</description>
</item>
</channel>
</rss>`

func rssSource() ports.Source {
	return ports.Source{
		Name:            "Test Feed",
		URL:             "https://feeds.example.com/jobs",
		Format:          ports.FormatRSS,
		DefaultCategory: models.CategoryGovt,
		Trusted:         true,
	}
}

func TestExtractRSS(t *testing.T) {
	e := NewExtractor()

	candidates, err := e.Extract(rssSource(), sampleRSS)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2 (untitled item skipped)", len(candidates))
	}

	ssc := candidates[0]
	if ssc.Title != "SSC CGL Recruitment 2026: Apply Online for 17727 Posts" {
		t.Errorf("title = %q", ssc.Title)
	}
	if ssc.ApplyLink != "https://ssc.gov.in/cgl-2026" {
		t.Errorf("applyLink = %q", ssc.ApplyLink)
	}
	if ssc.SourceName != "Test Feed" {
		t.Errorf("sourceName = %q", ssc.SourceName)
	}
	if !ssc.Trusted {
		t.Error("trust tier must carry over from the source")
	}
	if ssc.Category != models.CategoryGovt {
		t.Errorf("category = %s, want GOVT", ssc.Category)
	}
	if ssc.Vacancies != "17727" {
		t.Errorf("vacancies = %q, want 17727", ssc.Vacancies)
	}
	if ssc.PublishedAt == nil {
		t.Error("pubDate not parsed")
	}

	railway := candidates[1]
	if railway.Category != models.CategoryRailway {
		t.Errorf("category = %s, want RAILWAY", railway.Category)
	}
	if railway.Experience != "Fresher" {
		t.Errorf("experience = %q, want Fresher", railway.Experience)
	}
}

func TestExtractHTML(t *testing.T) {
	e := NewExtractor()
	source := ports.Source{
		Name:   "Listing Page",
		URL:    "https://jobs.example.com/latest/",
		Format: ports.FormatHTML,
	}

	page := `<html><body>
<h2><a href="/openings/clerk-recruitment-2026">Bank Clerk Recruitment 2026 Apply Online</a></h2>
<h2><a href="https://jobs.example.com/openings/po-notification">IBPS PO Notification Released</a></h2>
<h2><a href="/short">Short</a></h2>
<h2><a href="/openings/clerk-recruitment-2026">Bank Clerk Recruitment 2026 Apply Online</a></h2>
</body></html>`

	candidates, err := e.Extract(source, page)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2 (short title and duplicate dropped)", len(candidates))
	}
	if candidates[0].ApplyLink != "https://jobs.example.com/openings/clerk-recruitment-2026" {
		t.Errorf("relative href not resolved: %q", candidates[0].ApplyLink)
	}
	if candidates[1].ApplyLink != "https://jobs.example.com/openings/po-notification" {
		t.Errorf("absolute href mangled: %q", candidates[1].ApplyLink)
	}
}

func TestExtractHTML_FallsBackToPageTitle(t *testing.T) {
	e := NewExtractor()
	source := ports.Source{
		Name:   "Notice Page",
		URL:    "https://board.example.com/notice",
		Format: ports.FormatHTML,
	}

	page := `<html><head><title>UPSC CSE Notification 2026 | Board Portal</title></head><body><p>details</p></body></html>`

	candidates, err := e.Extract(source, page)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1 from the page title", len(candidates))
	}
	if candidates[0].Title != "UPSC CSE Notification 2026" {
		t.Errorf("title = %q, site suffix not stripped", candidates[0].Title)
	}
	if candidates[0].ApplyLink != source.URL {
		t.Errorf("applyLink = %q, want the page URL", candidates[0].ApplyLink)
	}
}

func TestExtractJSON(t *testing.T) {
	e := NewExtractor()
	source := ports.Source{
		Name:   "JSON API",
		URL:    "https://api.example.com/jobs",
		Format: ports.FormatJSON,
	}

	tests := []struct {
		name string
		body string
	}{
		{"bare list", `[{"title":"Data Analyst Hiring at Fintech Startup","url":"https://careers.example.com/da","organization":"Acme Fintech","published_at":"2026-03-01T10:00:00Z"}]`},
		{"wrapped list", `{"jobs":[{"title":"Data Analyst Hiring at Fintech Startup","link":"https://careers.example.com/da","organization":"Acme Fintech","published_at":"2026-03-01T10:00:00Z"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := e.Extract(source, tt.body)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if len(candidates) != 1 {
				t.Fatalf("got %d candidates, want 1", len(candidates))
			}
			c := candidates[0]
			if c.Organization != "Acme Fintech" {
				t.Errorf("organization = %q, API value must win over heuristics", c.Organization)
			}
			if c.ApplyLink != "https://careers.example.com/da" {
				t.Errorf("applyLink = %q", c.ApplyLink)
			}
			if c.PublishedAt == nil {
				t.Error("published_at not parsed")
			}
		})
	}
}

func TestBuildCandidate_RecordsGuessedFields(t *testing.T) {
	e := NewExtractor()

	vague := e.buildCandidate(rssSource(), "Recruitment Notification Released", "", "https://example.com/x", nil)
	for _, field := range []string{"location", "experience", "qualification"} {
		if !vague.IsGuessed(field) {
			t.Errorf("%s should be marked guessed when nothing was detected", field)
		}
	}

	specific := e.buildCandidate(rssSource(),
		"Delhi Police Constable Recruitment",
		"Fresher candidates with 12th pass qualification may apply. Location: Delhi.",
		"https://delhipolice.gov.in/apply", nil)
	if specific.IsGuessed("location") {
		t.Errorf("location %q was detected, must not be guessed", specific.Location)
	}
	if specific.IsGuessed("experience") {
		t.Errorf("experience %q was detected, must not be guessed", specific.Experience)
	}
	if specific.State != "Delhi NCR" {
		t.Errorf("state = %q, want Delhi NCR", specific.State)
	}
}

func TestExtractLinks(t *testing.T) {
	html := `<a href="https://ssc.gov.in/apply">apply</a> <a href='https://timesofindia.indiatimes.com/x'>news</a> <a href="/relative">rel</a>`
	links := extractLinks(html)
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2 absolute", len(links))
	}
	if links[0] != "https://ssc.gov.in/apply" {
		t.Errorf("links[0] = %q", links[0])
	}
}
