package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RunType kind of automation run
type RunType string

const (
	RunTypeFetchJobs    RunType = "FETCH_JOBS"
	RunTypeCleanup      RunType = "CLEANUP"
	RunTypeTelegramPost RunType = "TELEGRAM_POST"
	RunTypeForcePost    RunType = "FORCE_POST"
)

// RunStatus outcome of a run
type RunStatus string

const (
	RunStatusCompleted RunStatus = "COMPLETED"
	RunStatusPartial   RunStatus = "PARTIAL"
	RunStatusFailed    RunStatus = "FAILED"
)

// RunStats per-run counters stored as jsonb
type RunStats struct {
	Fetched    int `json:"fetched"`
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
	Expired    int `json:"expired"`
	Archived   int `json:"archived"`
	Cleaned    int `json:"cleaned"`
	Posted     int `json:"posted"`
	Errors     int `json:"errors"`
}

// Scan implements sql.Scanner for RunStats
func (s *RunStats) Scan(value interface{}) error {
	if value == nil {
		*s = RunStats{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// Value implements driver.Valuer for RunStats
func (s RunStats) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// RunError one failed source within a run
type RunError struct {
	Source    string    `json:"source"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// RunErrors jsonb list of per-source failures
type RunErrors []RunError

// Scan implements sql.Scanner for RunErrors
func (e *RunErrors) Scan(value interface{}) error {
	if value == nil {
		*e = RunErrors{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, e)
}

// Value implements driver.Valuer for RunErrors
func (e RunErrors) Value() (driver.Value, error) {
	if e == nil {
		return "[]", nil
	}
	return json.Marshal(e)
}

// AutomationLog append-only audit row, one per pipeline run.
// Never mutated after insert.
type AutomationLog struct {
	ID           uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RunType      RunType    `gorm:"size:20;not null;index:idx_logs_type_created,priority:1" json:"runType"`
	Status       RunStatus  `gorm:"size:20;not null" json:"status"`
	Stats        RunStats   `gorm:"type:jsonb;default:'{}'" json:"stats"`
	Sources      StringList `gorm:"type:jsonb;default:'[]'" json:"sources"`
	ErrorDetails RunErrors  `gorm:"type:jsonb;default:'[]'" json:"errorDetails,omitempty"`
	DurationMS   int64      `json:"durationMs"`
	CreatedAt    time.Time  `gorm:"index:idx_logs_type_created,priority:2,sort:desc" json:"createdAt"`
}

func (AutomationLog) TableName() string {
	return "automation_logs"
}
