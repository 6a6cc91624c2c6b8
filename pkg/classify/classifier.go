// Package classify holds the keyword heuristics that turn raw listing text
// into category, experience, location, qualification and skill fields.
// All vocabularies live in keywords.go under VocabularyVersion.
package classify

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"jobupdate/domain/models"
)

var (
	rangeExpRegex  = regexp.MustCompile(`(?i)(\d+)\s*(?:-|–|to)\s*(\d+)\s*years?`)
	singleExpRegex = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)
	vacancyRegex   = regexp.MustCompile(`(?i)(\d{1,6})\s+(?:posts?|vacanc(?:y|ies)|openings?|positions?)`)
	salaryRegex    = regexp.MustCompile(`(?i)(?:salary|stipend|package|lpa|ctc|pay scale|pay)\s*:?\s*(?:rs\.?\s*)?([\d.,\-]+\s*(?:lpa|per month|k|monthly|annually)?)`)
)

// DetectCategory scores the text against the sector vocabularies.
// Result and AdmitCard are content types and take priority over sectors.
// A sector needs a weighted score of at least 2 to override the source's
// declared category; otherwise the declared category stands.
func DetectCategory(title, content string, declared models.JobCategory) models.JobCategory {
	text := strings.ToLower(title + " " + content)

	if containsAny(text, resultKeywords) {
		return models.CategoryResult
	}
	if containsAny(text, admitCardKeywords) {
		return models.CategoryAdmitCard
	}

	type score struct {
		category models.JobCategory
		value    float64
	}
	scores := []score{
		{models.CategoryIT, float64(countHits(text, itKeywords)) * 2},
		{models.CategoryBanking, float64(countHits(text, bankKeywords)) * 1.5},
		{models.CategoryRailway, float64(countHits(text, railwayKeywords)) * 1.5},
		{models.CategoryPolice, float64(countHits(text, policeKeywords)) * 1.5},
		{models.CategoryTeaching, float64(countHits(text, teachingKeywords)) * 1.5},
		{models.CategoryPSU, float64(countHits(text, psuKeywords)) * 1.5},
		{models.CategoryGovt, float64(countHits(text, govtKeywords))},
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].value > scores[j].value
	})

	if scores[0].value >= 2 {
		return scores[0].category
	}

	if declared != "" {
		return declared
	}
	return models.CategoryGovt
}

// DetectExperience parses year-range patterns out of free text
func DetectExperience(text string) string {
	t := strings.ToLower(text)

	if strings.Contains(t, "fresher") || strings.Contains(t, "entry level") ||
		strings.Contains(t, "0 year") || strings.Contains(t, "new graduate") {
		return "Fresher"
	}

	if m := rangeExpRegex.FindStringSubmatch(t); m != nil {
		max := atoiSafe(m[2])
		switch {
		case max <= 2:
			return "0-2 Years"
		case max <= 5:
			return "2-5 Years"
		default:
			return "5+ Years"
		}
	}

	if m := singleExpRegex.FindStringSubmatch(t); m != nil {
		years := atoiSafe(m[1])
		switch {
		case years <= 2:
			return "0-2 Years"
		case years <= 5:
			return "2-5 Years"
		default:
			return "5+ Years"
		}
	}

	if strings.Contains(t, "experienced") || strings.Contains(t, "senior") || strings.Contains(t, "lead") {
		return "Experienced"
	}

	return "Not Specified"
}

// Location is the resolved place of work
type Location struct {
	Name     string
	State    string
	IsRemote bool
	IsHybrid bool
}

// DetectLocation scans for cities first, then states, then remote markers
func DetectLocation(text string) Location {
	t := strings.ToLower(text)

	isRemote := strings.Contains(t, "remote") || strings.Contains(t, "work from home") || strings.Contains(t, "wfh")
	isHybrid := strings.Contains(t, "hybrid")

	for city, state := range cityState {
		if strings.Contains(t, strings.ToLower(city)) {
			name := city
			if isRemote {
				name = city + " / Remote"
			} else if isHybrid {
				name = city + " (Hybrid)"
			}
			return Location{Name: name, State: state, IsRemote: isRemote, IsHybrid: isHybrid}
		}
	}

	for _, state := range indianStates {
		if strings.Contains(t, strings.ToLower(state)) {
			return Location{Name: state, State: state, IsRemote: isRemote, IsHybrid: isHybrid}
		}
	}

	if isRemote {
		return Location{Name: "Remote (India)", IsRemote: true}
	}
	if isHybrid {
		return Location{Name: "Hybrid (India)", IsHybrid: true}
	}
	return Location{Name: "All India"}
}

// DetectSkills matches the skill vocabulary against the text
func DetectSkills(text string) []string {
	t := strings.ToLower(text)
	var skills []string
	for _, skill := range popularSkills {
		if strings.Contains(t, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// DetectQualification maps qualification keywords to display labels.
// "See Notification" when nothing matched.
func DetectQualification(text string) string {
	t := strings.ToLower(text)
	seen := make(map[string]bool)
	var found []string
	for keyword, label := range qualificationMap {
		if strings.Contains(t, keyword) && !seen[label] {
			seen[label] = true
			found = append(found, label)
		}
	}
	if len(found) == 0 {
		return "See Notification"
	}
	sort.Strings(found)
	return strings.Join(found, ", ")
}

// DetectVacancies pulls a post count out of free text
func DetectVacancies(text string) string {
	if m := vacancyRegex.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// DetectSalary pulls a salary figure out of free text
func DetectSalary(text string) string {
	if m := salaryRegex.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// IsRelevant reports whether a listing from an ambiguous source looks like a
// job posting: it must carry a job-signal keyword and none of the news-noise
// keywords. Returns the rejection reason for logging.
func IsRelevant(title, content string) (bool, string) {
	text := strings.ToLower(title + " " + content)

	if !containsAny(text, jobSignalKeywords) {
		return false, "no job-related keywords"
	}
	if containsAny(text, newsNoiseKeywords) {
		return false, "contains news noise"
	}
	return true, ""
}

// IsOfficialLink reports whether a URL points at a recognized official domain
func IsOfficialLink(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, d := range officialDomains {
		if strings.HasSuffix(host, d) || host == strings.TrimPrefix(d, ".") {
			return true
		}
	}
	return false
}

// IsNewsLink reports whether a URL belongs to a known news/aggregator host
func IsNewsLink(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, d := range newsDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// AggregatorOrganizations returns the known aggregator names, for callers
// that sweep stored records in bulk
func AggregatorOrganizations() []string {
	out := make([]string, len(aggregatorOrganizations))
	copy(out, aggregatorOrganizations)
	return out
}

// IsAggregatorOrganization reports whether an organization value is a generic
// aggregator name rather than a real employer
func IsAggregatorOrganization(org string) bool {
	for _, name := range aggregatorOrganizations {
		if strings.EqualFold(org, name) {
			return true
		}
	}
	return false
}

// DeriveOrganizationFromTitle rebuilds an organization from the title when the
// stored value is a known aggregator name: domain keyword overrides first,
// then the title's leading token, with a generic label as the floor.
func DeriveOrganizationFromTitle(title string) string {
	org := strings.TrimSpace(strings.SplitN(title, " ", 2)[0])
	if strings.Contains(title, "Railway") {
		org = "Indian Railways"
	} else if strings.Contains(title, "Bank") {
		org = "Banking Sector"
	}

	if len(org) < 3 {
		org = "Govt Recruitment"
	}
	return org
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func countHits(text string, keywords []string) int {
	hits := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			hits++
		}
	}
	return hits
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
