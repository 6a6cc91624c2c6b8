package models

import "time"

// Candidate is a transient listing produced by the extractor, never persisted.
// Fields the extractor could not confidently resolve are filled from fallback
// heuristics and recorded in Guessed, so classification quality is inspectable.
type Candidate struct {
	Title        string
	Organization string
	PostName     string
	Category     JobCategory
	SubCategory  string

	Qualification string
	Location      string
	State         string
	Experience    string
	Skills        []string
	Salary        string
	Vacancies     string

	LastDate    *time.Time
	PublishedAt *time.Time

	SourceName string
	SourceURL  string
	ApplyLink  string

	Description string
	Tags        []string

	Trusted bool // source trust tier: true = auto-publish, false = enter as PENDING

	guessed map[string]bool
}

// MarkGuessed records that a field was filled by a fallback heuristic
func (c *Candidate) MarkGuessed(field string) {
	if c.guessed == nil {
		c.guessed = make(map[string]bool)
	}
	c.guessed[field] = true
}

// IsGuessed reports whether a field came from a fallback rather than
// confident extraction
func (c *Candidate) IsGuessed(field string) bool {
	return c.guessed[field]
}

// GuessedFields lists all fallback-populated fields
func (c *Candidate) GuessedFields() []string {
	fields := make([]string, 0, len(c.guessed))
	for f := range c.guessed {
		fields = append(fields, f)
	}
	return fields
}
