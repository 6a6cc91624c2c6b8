package feeds

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"jobupdate/domain/models"
	"jobupdate/domain/ports"
	"jobupdate/pkg/classify"
)

// Extractor turns a raw source payload into candidates. Parsing is format
// specific, classification is shared.
type Extractor struct {
	parser *gofeed.Parser
}

func NewExtractor() *Extractor {
	return &Extractor{parser: gofeed.NewParser()}
}

func (e *Extractor) Extract(source ports.Source, body string) ([]*models.Candidate, error) {
	switch source.Format {
	case ports.FormatRSS:
		return e.extractRSS(source, body)
	case ports.FormatHTML:
		return e.extractHTML(source, body)
	case ports.FormatJSON:
		return e.extractJSON(source, body)
	}
	return nil, fmt.Errorf("unsupported source format: %s", source.Format)
}

func (e *Extractor) extractRSS(source ports.Source, body string) ([]*models.Candidate, error) {
	feed, err := e.parser.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var candidates []*models.Candidate
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		content := item.Description
		if item.Content != "" {
			content = content + " " + item.Content
		}

		c := e.buildCandidate(source, item.Title, content, item.Link, item.PublishedParsed)
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// extractHTML scrapes listing pages: headline anchors are treated as items.
// Pages vary, so the selector chain goes from specific to generic.
func (e *Extractor) extractHTML(source ports.Source, body string) ([]*models.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	seen := make(map[string]bool)
	var candidates []*models.Candidate

	for _, selector := range []string{"article a", "h2 a", "h3 a", ".job-listing a"} {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok {
				return
			}
			href = absoluteURL(source.URL, href)
			title := cleanTitle(sel.Text())
			if len(title) < 10 || seen[href] {
				return
			}
			seen[href] = true
			candidates = append(candidates, e.buildCandidate(source, title, "", href, nil))
		})
		if len(candidates) > 0 {
			break
		}
	}

	// last resort: a single-listing page with no anchors still has a usable
	// page title
	if len(candidates) == 0 {
		if title := pageTitle(doc); len(title) >= 10 {
			candidates = append(candidates, e.buildCandidate(source, title, "", source.URL, nil))
		}
	}
	return candidates, nil
}

// pageTitle returns the document title with any site-name suffix stripped
func pageTitle(doc *goquery.Document) string {
	title := cleanTitle(doc.Find("title").First().Text())
	for _, sep := range []string{" | ", " - "} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	return strings.TrimSpace(title)
}

// jsonItem is the shape JSON API sources are expected to return
type jsonItem struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	URL          string `json:"url"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
	PublishedAt  string `json:"published_at"`
}

func (e *Extractor) extractJSON(source ports.Source, body string) ([]*models.Candidate, error) {
	var items []jsonItem
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		// some APIs wrap the list
		var wrapped struct {
			Jobs []jsonItem `json:"jobs"`
		}
		if err2 := json.Unmarshal([]byte(body), &wrapped); err2 != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		items = wrapped.Jobs
	}

	var candidates []*models.Candidate
	for _, item := range items {
		link := item.Link
		if link == "" {
			link = item.URL
		}
		if item.Title == "" || link == "" {
			continue
		}

		var published *time.Time
		if item.PublishedAt != "" {
			if t, err := time.Parse(time.RFC3339, item.PublishedAt); err == nil {
				published = &t
			}
		}

		c := e.buildCandidate(source, item.Title, item.Description, link, published)
		if item.Organization != "" {
			c.Organization = item.Organization
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// buildCandidate classifies the raw item into a structured candidate,
// recording which fields came from fallback heuristics
func (e *Extractor) buildCandidate(source ports.Source, title, content, link string, published *time.Time) *models.Candidate {
	fullText := title + " " + content

	c := &models.Candidate{
		Title:       strings.TrimSpace(title),
		Category:    classify.DetectCategory(title, content, source.DefaultCategory),
		Description: strings.TrimSpace(content),
		SourceName:  source.Name,
		SourceURL:   link,
		ApplyLink:   link,
		PublishedAt: published,
		Trusted:     source.Trusted,
	}

	org, confident := classify.ExtractOrganization(title)
	c.Organization = org
	if !confident {
		c.MarkGuessed("organization")
	}
	c.PostName = classify.ExtractPostName(title, org)

	loc := classify.DetectLocation(fullText)
	c.Location = loc.Name
	c.State = loc.State
	if loc.Name == "All India" {
		c.MarkGuessed("location")
	}

	c.Experience = classify.DetectExperience(fullText)
	if c.Experience == "Not Specified" {
		c.MarkGuessed("experience")
	}

	c.Qualification = classify.DetectQualification(fullText)
	if c.Qualification == "See Notification" {
		c.MarkGuessed("qualification")
	}

	c.Skills = classify.DetectSkills(fullText)
	c.Vacancies = classify.DetectVacancies(fullText)
	c.Salary = classify.DetectSalary(fullText)

	return c
}

var hrefPattern = regexp.MustCompile(`href=["'](https?://[^"']+)["']`)

// extractLinks collects all absolute hrefs from an HTML document
func extractLinks(html string) []string {
	matches := hrefPattern.FindAllStringSubmatch(html, -1)
	links := make([]string, 0, len(matches))
	for _, m := range matches {
		links = append(links, m[1])
	}
	return links
}

func absoluteURL(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base = strings.TrimRight(base, "/")
	if idx := strings.Index(base[8:], "/"); idx >= 0 {
		base = base[:8+idx]
	}
	return base + "/" + strings.TrimLeft(href, "/")
}

func cleanTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
