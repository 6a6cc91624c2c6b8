package utils

import (
	"strings"
	"testing"
)

func TestMakeJobSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"SSC CGL 2026 Notification", "ssc-cgl-2026-notification"},
		{"Railway Group D Recruitment!!!", "railway-group-d-recruitment"},
		{"  IBPS   PO   2026  ", "ibps-po-2026"},
		{"UPSC: Civil Services (Prelims) 2026", "upsc-civil-services-prelims-2026"},
	}

	for _, tt := range tests {
		if got := MakeJobSlug(tt.title); got != tt.want {
			t.Errorf("MakeJobSlug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestMakeJobSlug_SameTitleSameSlug(t *testing.T) {
	a := MakeJobSlug("SSC CGL Recruitment 2026 Notification")
	b := MakeJobSlug("SSC CGL Recruitment 2026 Notification")
	if a != b {
		t.Errorf("slug is not deterministic: %q vs %q", a, b)
	}
}

func TestMakeJobSlug_Truncation(t *testing.T) {
	long := strings.Repeat("recruitment ", 20)
	got := MakeJobSlug(long)
	if len(got) > 80 {
		t.Errorf("slug length = %d, want at most 80", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("truncated slug must not end with a hyphen: %q", got)
	}
	if strings.HasPrefix(got, "-") {
		t.Errorf("slug must not start with a hyphen: %q", got)
	}
}
