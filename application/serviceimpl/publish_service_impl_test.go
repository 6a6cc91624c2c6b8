package serviceimpl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"jobupdate/domain/models"
	"jobupdate/domain/ports"
)

func newTestPublisher(repo *memJobRepo, logs *memLogRepo, channels ...ports.ChannelPublisher) *PublishServiceImpl {
	return &PublishServiceImpl{
		jobRepo:  repo,
		logRepo:  logs,
		channels: channels,
		now:      time.Now,
		pause:    time.Millisecond,
	}
}

func seedPublished(t *testing.T, repo *memJobRepo, slug string) *models.Job {
	t.Helper()
	job := &models.Job{
		Slug: slug, Title: "Recruitment for " + slug,
		Organization: "SSC", Status: models.JobStatusPublished,
		Category: models.CategoryGovt,
	}
	if err := repo.Create(context.Background(), job); err != nil {
		t.Fatalf("seed %s: %v", slug, err)
	}
	return job
}

func TestAutoPost_SetsFlagAfterAck(t *testing.T) {
	repo := newMemJobRepo()
	logs := &memLogRepo{}
	channel := &fakeChannel{name: "telegram", configured: true}

	seedPublished(t, repo, "job-a")
	seedPublished(t, repo, "job-b")

	svc := newTestPublisher(repo, logs, channel)
	result, err := svc.AutoPost(context.Background())
	if err != nil {
		t.Fatalf("AutoPost: %v", err)
	}

	if result.Stats.Posted != 2 {
		t.Errorf("Posted = %d, want 2", result.Stats.Posted)
	}
	if len(channel.sent) != 2 {
		t.Errorf("channel received %d sends, want 2", len(channel.sent))
	}
	for _, slug := range []string{"job-a", "job-b"} {
		if !repo.jobs[slug].TelegramPosted {
			t.Errorf("%s telegram flag not set after ack", slug)
		}
		if repo.jobs[slug].PublishedAt == nil {
			t.Errorf("%s publishedAt not recorded", slug)
		}
	}
}

func TestAutoPost_AtMostOnce(t *testing.T) {
	repo := newMemJobRepo()
	logs := &memLogRepo{}
	channel := &fakeChannel{name: "telegram", configured: true}

	seedPublished(t, repo, "job-a")

	svc := newTestPublisher(repo, logs, channel)
	if _, err := svc.AutoPost(context.Background()); err != nil {
		t.Fatalf("first AutoPost: %v", err)
	}

	second, err := svc.AutoPost(context.Background())
	if err != nil {
		t.Fatalf("second AutoPost: %v", err)
	}
	if second.Stats.Posted != 0 {
		t.Errorf("second cycle Posted = %d, want 0", second.Stats.Posted)
	}
	if len(channel.sent) != 1 {
		t.Errorf("channel received %d sends total, want exactly 1", len(channel.sent))
	}
}

func TestAutoPost_FlagStaysFalseOnSendFailure(t *testing.T) {
	repo := newMemJobRepo()
	logs := &memLogRepo{}
	channel := &fakeChannel{name: "telegram", configured: true, fail: true}

	seedPublished(t, repo, "job-a")

	svc := newTestPublisher(repo, logs, channel)
	result, err := svc.AutoPost(context.Background())
	if err != nil {
		t.Fatalf("AutoPost: %v", err)
	}

	if result.Stats.Posted != 0 {
		t.Errorf("Posted = %d, want 0", result.Stats.Posted)
	}
	if result.Stats.Errors != 1 {
		t.Errorf("Errors = %d, want 1", result.Stats.Errors)
	}
	if repo.jobs["job-a"].TelegramPosted {
		t.Error("flag must stay false when the channel did not acknowledge")
	}

	log := logs.lastByType(models.RunTypeTelegramPost)
	if log == nil {
		t.Fatal("no post log written")
	}
	if log.Status != models.RunStatusFailed {
		t.Errorf("log status = %s, want FAILED", log.Status)
	}
}

func TestAutoPost_SkipsUnconfiguredChannel(t *testing.T) {
	repo := newMemJobRepo()
	logs := &memLogRepo{}
	configured := &fakeChannel{name: "telegram", configured: true}
	unconfigured := &fakeChannel{name: "whatsapp", configured: false}

	seedPublished(t, repo, "job-a")

	svc := newTestPublisher(repo, logs, configured, unconfigured)
	if _, err := svc.AutoPost(context.Background()); err != nil {
		t.Fatalf("AutoPost: %v", err)
	}

	if len(unconfigured.sent) != 0 {
		t.Errorf("unconfigured channel received %d sends, want 0", len(unconfigured.sent))
	}
	if repo.jobs["job-a"].WhatsappPosted {
		t.Error("whatsapp flag must not be set by a skipped channel")
	}
}

func TestAutoPost_ChannelsTrackedIndependently(t *testing.T) {
	repo := newMemJobRepo()
	logs := &memLogRepo{}
	telegram := &fakeChannel{name: "telegram", configured: true}
	whatsapp := &fakeChannel{name: "whatsapp", configured: true}

	job := seedPublished(t, repo, "job-a")
	job.TelegramPosted = true // already delivered there

	svc := newTestPublisher(repo, logs, telegram, whatsapp)
	if _, err := svc.AutoPost(context.Background()); err != nil {
		t.Fatalf("AutoPost: %v", err)
	}

	if len(telegram.sent) != 0 {
		t.Errorf("telegram resent an already-posted job %d times", len(telegram.sent))
	}
	if len(whatsapp.sent) != 1 {
		t.Errorf("whatsapp sends = %d, want 1", len(whatsapp.sent))
	}
}

func TestForcePost_CapsLimit(t *testing.T) {
	repo := newMemJobRepo()
	logs := &memLogRepo{}
	channel := &fakeChannel{name: "telegram", configured: true}

	for i := 0; i < 30; i++ {
		seedPublished(t, repo, fmt.Sprintf("job-%02d", i))
	}

	svc := newTestPublisher(repo, logs, channel)
	result, err := svc.ForcePost(context.Background(), 1000)
	if err != nil {
		t.Fatalf("ForcePost: %v", err)
	}

	if result.Stats.Posted != forcePostCap {
		t.Errorf("Posted = %d, want recovery cap %d", result.Stats.Posted, forcePostCap)
	}

	log := logs.lastByType(models.RunTypeForcePost)
	if log == nil {
		t.Fatal("no force-post log written")
	}
}

func TestPostJob_SingleRecordAllChannels(t *testing.T) {
	repo := newMemJobRepo()
	logs := &memLogRepo{}
	telegram := &fakeChannel{name: "telegram", configured: true}
	whatsapp := &fakeChannel{name: "whatsapp", configured: true}

	seedPublished(t, repo, "job-a")
	seedPublished(t, repo, "job-b")

	svc := newTestPublisher(repo, logs, telegram, whatsapp)
	if err := svc.PostJob(context.Background(), "job-a"); err != nil {
		t.Fatalf("PostJob: %v", err)
	}

	if len(telegram.sent) != 1 || telegram.sent[0] != "job-a" {
		t.Errorf("telegram sent %v, want [job-a]", telegram.sent)
	}
	if len(whatsapp.sent) != 1 || whatsapp.sent[0] != "job-a" {
		t.Errorf("whatsapp sent %v, want [job-a]", whatsapp.sent)
	}
	if repo.jobs["job-b"].TelegramPosted {
		t.Error("job-b must be untouched")
	}
}
