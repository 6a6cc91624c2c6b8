package utils

import (
	"strings"

	"github.com/gosimple/slug"
)

// maxSlugLen keeps slugs indexable and URL-friendly
const maxSlugLen = 80

// MakeJobSlug derives the stable identity key for a listing from its title:
// lowercase, non-alphanumeric runs collapsed to single hyphens, no leading or
// trailing hyphen, truncated to 80 characters. The slug is assigned once at
// creation and never regenerated.
func MakeJobSlug(title string) string {
	s := slug.Make(title)
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
		s = strings.TrimRight(s, "-")
	}
	return s
}

// Truncate shortens text to length runes with an ellipsis
func Truncate(text string, length int) string {
	if len(text) <= length {
		return text
	}
	return text[:length] + "..."
}
