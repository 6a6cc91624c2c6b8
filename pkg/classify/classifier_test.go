package classify

import (
	"testing"

	"jobupdate/domain/models"
)

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		content  string
		declared models.JobCategory
		want     models.JobCategory
	}{
		{
			name:  "result beats sector keywords",
			title: "SSC CGL Result 2026 Declared",
			want:  models.CategoryResult,
		},
		{
			name:  "admit card beats sector keywords",
			title: "RRB NTPC Admit Card Released, Download Hall Ticket",
			want:  models.CategoryAdmitCard,
		},
		{
			name:     "railway keywords outscore declared category",
			title:    "Railway Group D Recruitment",
			content:  "Indian Railways invites applications for loco pilot and technician posts",
			declared: models.CategoryGovt,
			want:     models.CategoryRailway,
		},
		{
			name:    "it keywords carry double weight",
			title:   "Software Developer Hiring",
			content: "Backend engineer with Python and AWS experience",
			want:    models.CategoryIT,
		},
		{
			name:     "weak signal falls back to declared",
			title:    "Various Openings Announced",
			content:  "Multiple positions open across locations",
			declared: models.CategoryPrivate,
			want:     models.CategoryPrivate,
		},
		{
			name:  "no signal and no declared defaults to govt",
			title: "Openings Announced",
			want:  models.CategoryGovt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectCategory(tt.title, tt.content, tt.declared)
			if got != tt.want {
				t.Errorf("DetectCategory(%q) = %s, want %s", tt.title, got, tt.want)
			}
		})
	}
}

func TestDetectExperience(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"suitable for fresher candidates", "Fresher"},
		{"requires 1-2 years of experience", "0-2 Years"},
		{"requires 3 to 5 years experience", "2-5 Years"},
		{"minimum 8 years in the field", "5+ Years"},
		{"senior role for experienced professionals", "Experienced"},
		{"walk-in interview this week", "Not Specified"},
	}

	for _, tt := range tests {
		if got := DetectExperience(tt.text); got != tt.want {
			t.Errorf("DetectExperience(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectLocation(t *testing.T) {
	tests := []struct {
		text      string
		wantName  string
		wantState string
	}{
		{"office located in Bangalore", "Bangalore", "Karnataka"},
		{"posting in Bangalore, remote allowed", "Bangalore / Remote", "Karnataka"},
		{"positions across Tamil Nadu", "Tamil Nadu", "Tamil Nadu"},
		{"fully remote position", "Remote (India)", ""},
		{"vacancies announced", "All India", ""},
	}

	for _, tt := range tests {
		loc := DetectLocation(tt.text)
		if loc.Name != tt.wantName || loc.State != tt.wantState {
			t.Errorf("DetectLocation(%q) = (%q, %q), want (%q, %q)",
				tt.text, loc.Name, loc.State, tt.wantName, tt.wantState)
		}
	}
}

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    bool
	}{
		{
			name:    "recruitment notice passes",
			title:   "SSC CGL Recruitment 2026",
			content: "Apply online for the vacancy",
			want:    true,
		},
		{
			name:  "no job keywords rejected",
			title: "Ten weekend getaways near Mumbai",
			want:  false,
		},
		{
			name:  "news noise rejected even with job keywords",
			title: "Viral recruitment scam alert: fake notification circulating",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := IsRelevant(tt.title, tt.content)
			if got != tt.want {
				t.Errorf("IsRelevant(%q) = %v (%s), want %v", tt.title, got, reason, tt.want)
			}
			if !got && reason == "" {
				t.Error("rejection must carry a reason")
			}
		})
	}
}

func TestIsOfficialLink(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://ssc.nic.in/apply", true},
		{"https://www.upsc.gov.in/exam", true},
		{"https://careers.ibps.in/crp", true},
		{"https://timesofindia.indiatimes.com/jobs", false},
		{"not a url", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsOfficialLink(tt.url); got != tt.want {
			t.Errorf("IsOfficialLink(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestExtractOrganization(t *testing.T) {
	tests := []struct {
		title         string
		want          string
		wantConfident bool
	}{
		{"Staff Selection Commission: CGL 2026 Apply", "Staff Selection Commission", true},
		{"Delhi Police Recruitment Notification", "Delhi Police", true},
		{"Recruitment Notification", "Govt Recruitment", false},
	}

	for _, tt := range tests {
		got, confident := ExtractOrganization(tt.title)
		if got != tt.want || confident != tt.wantConfident {
			t.Errorf("ExtractOrganization(%q) = (%q, %v), want (%q, %v)",
				tt.title, got, confident, tt.want, tt.wantConfident)
		}
	}
}

func TestDeriveOrganizationFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Railway Group D Recruitment 2026", "Indian Railways"},
		{"Bank PO Notification Out", "Banking Sector"},
		{"UPSC Civil Services Exam", "UPSC"},
		{"X Y", "Govt Recruitment"},
	}

	for _, tt := range tests {
		if got := DeriveOrganizationFromTitle(tt.title); got != tt.want {
			t.Errorf("DeriveOrganizationFromTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestIsAggregatorOrganization(t *testing.T) {
	if !IsAggregatorOrganization("Times of India Jobs") {
		t.Error("known aggregator name not recognized")
	}
	if !IsAggregatorOrganization("times of india jobs") {
		t.Error("aggregator match must be case insensitive")
	}
	if IsAggregatorOrganization("Delhi Police") {
		t.Error("real employer flagged as aggregator")
	}
}
