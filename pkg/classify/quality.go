package classify

import (
	"strings"

	"jobupdate/domain/models"
)

// QualityCheck scored validation of a candidate before it may enter the corpus
type QualityCheck struct {
	IsValid  bool
	Score    int // 0-100
	Errors   []string
	Warnings []string
}

// ValidateQuality scores a candidate. Missing title/organization/link are hard
// errors; a non-official link on a Govt-sector listing is only a warning.
// A candidate passes with no errors and a score of at least 50.
func ValidateQuality(c *models.Candidate) QualityCheck {
	var errors, warnings []string
	score := 100

	if len(c.Title) < 10 {
		errors = append(errors, "title is missing or too short")
		score -= 30
	}

	if len(c.Organization) < 2 {
		errors = append(errors, "organization is missing")
		score -= 25
	}

	if c.ApplyLink == "" {
		errors = append(errors, "apply link is missing")
		score -= 25
	}

	if c.ApplyLink != "" && c.Category != models.CategoryPrivate && c.Category != models.CategoryIT {
		if !IsOfficialLink(c.ApplyLink) {
			warnings = append(warnings, "apply link may not be from an official source")
			score -= 10
		}
	}

	if c.LastDate == nil && c.Category != models.CategoryResult && c.Category != models.CategoryAdmitCard {
		warnings = append(warnings, "last date not specified")
		score -= 5
	}

	if c.Qualification == "" || c.Qualification == "See Notification" {
		warnings = append(warnings, "qualification not clearly specified")
		score -= 5
	}

	if score < 0 {
		score = 0
	}

	return QualityCheck{
		IsValid:  len(errors) == 0 && score >= 50,
		Score:    score,
		Errors:   errors,
		Warnings: warnings,
	}
}

// ExtractOrganization takes the leading title segment before a delimiter and
// strips marketing noise. Falls back to the default label when nothing usable
// remains.
func ExtractOrganization(title string) (string, bool) {
	cleaned := title
	for _, noise := range []string{"Latest", "New", "Urgent", "Breaking", "Notification", "Recruitment", "Vacancy", "Hiring", "Apply Online", "Result", "Admit Card"} {
		cleaned = strings.ReplaceAll(cleaned, noise, "")
	}

	for _, sep := range []string{":", "|", " - ", "–"} {
		if idx := strings.Index(cleaned, sep); idx > 0 {
			cleaned = cleaned[:idx]
			break
		}
	}

	org := strings.Join(strings.Fields(cleaned), " ")
	if len(org) < 3 {
		return "Govt Recruitment", false
	}
	return org, true
}

// ExtractPostName removes the organization and filler words from the title
func ExtractPostName(title, org string) string {
	cleaned := strings.Replace(title, org, "", 1)
	for _, noise := range []string{"Recruitment", "Notification", "Vacancy", "Hiring", "Jobs", "Job", "for", "posts", "post"} {
		cleaned = strings.ReplaceAll(cleaned, noise, "")
	}
	cleaned = strings.Trim(cleaned, " :|-–")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return "Various Posts"
	}
	return cleaned
}
