package models

import (
	"testing"
	"time"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from JobStatus
		to   JobStatus
		want bool
	}{
		{JobStatusPending, JobStatusPublished, true},
		{JobStatusPending, JobStatusExpired, true},
		{JobStatusPublished, JobStatusExpired, true},
		{JobStatusExpired, JobStatusArchived, true},

		{JobStatusPublished, JobStatusPending, false},
		{JobStatusExpired, JobStatusPublished, false},
		{JobStatusArchived, JobStatusExpired, false},
		{JobStatusArchived, JobStatusPending, false},
		{JobStatusPublished, JobStatusPublished, false},

		{JobStatus("BOGUS"), JobStatusPublished, false},
		{JobStatusPending, JobStatus("BOGUS"), false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsExpiredAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name      string
		lastDate  *time.Time
		expiresAt *time.Time
		want      bool
	}{
		{"no deadlines", nil, nil, false},
		{"last date passed", &yesterday, nil, true},
		{"last date ahead", &tomorrow, nil, false},
		{"expires at passed", nil, &yesterday, true},
		{"either deadline passing expires", &tomorrow, &yesterday, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &Job{LastDate: tt.lastDate, ExpiresAt: tt.expiresAt}
			if got := j.IsExpiredAt(now); got != tt.want {
				t.Errorf("IsExpiredAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostedTo(t *testing.T) {
	j := &Job{TelegramPosted: true}
	if !j.PostedTo("telegram") {
		t.Error("telegram flag not reported")
	}
	if j.PostedTo("whatsapp") {
		t.Error("whatsapp flag should be false")
	}
	if j.PostedTo("unknown") {
		t.Error("unknown channel must report false")
	}
}
