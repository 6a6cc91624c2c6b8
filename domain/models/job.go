package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StringList stores a set of strings as jsonb (skills, tags)
type StringList []string

// Scan implements sql.Scanner for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Value implements driver.Valuer for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// JobStatus lifecycle state of a listing
type JobStatus string

const (
	JobStatusPending   JobStatus = "PENDING"   // awaiting manual or auto approval
	JobStatusPublished JobStatus = "PUBLISHED" // visible to end users
	JobStatusExpired   JobStatus = "EXPIRED"   // application deadline passed
	JobStatusArchived  JobStatus = "ARCHIVED"  // terminal, kept for audit history only
)

// statusRank orders the lifecycle; transitions only move forward.
var statusRank = map[JobStatus]int{
	JobStatusPending:   0,
	JobStatusPublished: 1,
	JobStatusExpired:   2,
	JobStatusArchived:  3,
}

// CanTransitionTo reports whether moving to next keeps the lifecycle monotonic.
// Admin overrides bypass this check outside the pipeline.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// JobCategory content category of a listing
type JobCategory string

const (
	CategoryGovt      JobCategory = "Govt"
	CategoryPSU       JobCategory = "PSU"
	CategoryRailway   JobCategory = "Railway"
	CategoryTeaching  JobCategory = "Teaching"
	CategoryPolice    JobCategory = "Police"
	CategoryDefence   JobCategory = "Defence"
	CategoryBanking   JobCategory = "Banking"
	CategoryIT        JobCategory = "IT"
	CategoryPrivate   JobCategory = "Private"
	CategoryResult    JobCategory = "Result"
	CategoryAdmitCard JobCategory = "AdmitCard"
)

// JobSource provenance of a record
type JobSource string

const (
	SourceManual    JobSource = "manual"
	SourceAutomated JobSource = "automated"
	SourceAPI       JobSource = "api"
)

type Job struct {
	ID   uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Slug string    `gorm:"size:80;uniqueIndex;not null" json:"slug"`

	Title        string      `gorm:"size:255;not null" json:"title"`
	Organization string      `gorm:"size:255;not null;index" json:"organization"`
	PostName     string      `gorm:"size:255" json:"postName,omitempty"`
	Category     JobCategory `gorm:"size:20;not null;index:idx_jobs_cat_status_created,priority:1" json:"category"`
	SubCategory  string      `gorm:"size:50" json:"subCategory,omitempty"`

	Qualification string     `gorm:"size:255" json:"qualification,omitempty"`
	Location      string     `gorm:"size:100;default:'All India'" json:"location"`
	State         string     `gorm:"size:50;index" json:"state,omitempty"`
	Experience    string     `gorm:"size:50" json:"experience,omitempty"`
	Skills        StringList `gorm:"type:jsonb;default:'[]'" json:"skills"`
	Salary        string     `gorm:"size:100" json:"salary,omitempty"`
	Vacancies     string     `gorm:"size:50" json:"vacancies,omitempty"`
	AgeLimit      string     `gorm:"size:100" json:"ageLimit,omitempty"`

	LastDate    *time.Time `gorm:"index" json:"lastDate,omitempty"`
	ExamDate    *time.Time `json:"examDate,omitempty"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	ExpiresAt   *time.Time `gorm:"index" json:"expiresAt,omitempty"`

	Status     JobStatus `gorm:"size:20;default:'PENDING';index:idx_jobs_cat_status_created,priority:2" json:"status"`
	IsVerified bool      `gorm:"default:false" json:"isVerified"`
	IsToday    bool      `gorm:"default:false" json:"isToday"`

	TelegramPosted bool       `gorm:"default:false;index" json:"telegramPosted"`
	WhatsappPosted bool       `gorm:"default:false" json:"whatsappPosted"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty"`

	Source    JobSource `gorm:"size:20;default:'manual'" json:"source"`
	SourceURL string    `gorm:"type:text" json:"sourceUrl,omitempty"`
	ApplyLink string    `gorm:"type:text" json:"applyLink,omitempty"`

	Description string     `gorm:"type:text" json:"description,omitempty"`
	Tags        StringList `gorm:"type:jsonb;default:'[]'" json:"tags"`

	Views  int64 `gorm:"default:0" json:"views"`
	Clicks int64 `gorm:"default:0" json:"clicks"`

	CreatedAt time.Time `gorm:"index:idx_jobs_cat_status_created,priority:3,sort:desc" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Job) TableName() string {
	return "jobs"
}

// IsPublished reports whether the job is visible to end users
func (j *Job) IsPublished() bool {
	return j.Status == JobStatusPublished
}

// IsExpiredAt reports whether the job's deadline has passed at the given time.
// A PUBLISHED job past its deadline is a transient state the lifecycle sweep
// resolves, not an invariant violation.
func (j *Job) IsExpiredAt(now time.Time) bool {
	if j.ExpiresAt != nil && j.ExpiresAt.Before(now) {
		return true
	}
	if j.LastDate != nil && j.LastDate.Before(now) {
		return true
	}
	return false
}

// PostedTo reports the posted flag for a channel by name
func (j *Job) PostedTo(channel string) bool {
	switch channel {
	case "telegram":
		return j.TelegramPosted
	case "whatsapp":
		return j.WhatsappPosted
	}
	return false
}
