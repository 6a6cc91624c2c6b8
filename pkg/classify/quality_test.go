package classify

import (
	"testing"
	"time"

	"jobupdate/domain/models"
)

func validCandidate() *models.Candidate {
	lastDate := time.Now().AddDate(0, 1, 0)
	return &models.Candidate{
		Title:         "SSC CGL Recruitment 2026 Notification",
		Organization:  "Staff Selection Commission",
		Category:      models.CategoryGovt,
		ApplyLink:     "https://ssc.gov.in/apply",
		Qualification: "Any Graduate",
		LastDate:      &lastDate,
	}
}

func TestValidateQuality(t *testing.T) {
	t.Run("complete candidate passes", func(t *testing.T) {
		check := ValidateQuality(validCandidate())
		if !check.IsValid {
			t.Fatalf("valid candidate rejected: %v", check.Errors)
		}
		if check.Score != 100 {
			t.Errorf("score = %d, want 100", check.Score)
		}
	})

	t.Run("missing apply link is a hard error", func(t *testing.T) {
		c := validCandidate()
		c.ApplyLink = ""
		check := ValidateQuality(c)
		if check.IsValid {
			t.Error("candidate without apply link must not pass")
		}
		if len(check.Errors) == 0 {
			t.Error("expected a hard error")
		}
	})

	t.Run("short title is a hard error", func(t *testing.T) {
		c := validCandidate()
		c.Title = "Jobs"
		if check := ValidateQuality(c); check.IsValid {
			t.Error("short title must not pass")
		}
	})

	t.Run("unofficial link on govt listing only warns", func(t *testing.T) {
		c := validCandidate()
		c.ApplyLink = "https://example.com/apply"
		check := ValidateQuality(c)
		if !check.IsValid {
			t.Fatalf("warning must not fail validation: %v", check.Errors)
		}
		if len(check.Warnings) == 0 {
			t.Error("expected an unofficial-link warning")
		}
	})

	t.Run("unofficial link on private listing does not warn", func(t *testing.T) {
		c := validCandidate()
		c.Category = models.CategoryPrivate
		c.ApplyLink = "https://careers.example.com/apply"
		check := ValidateQuality(c)
		for _, w := range check.Warnings {
			if w == "apply link may not be from an official source" {
				t.Error("private listings are not held to the official-domain rule")
			}
		}
	})
}
