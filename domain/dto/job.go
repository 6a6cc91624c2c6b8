package dto

import (
	"time"

	"jobupdate/domain/models"
)

// MaxPageSize caps the read API's limit parameter
const MaxPageSize = 100

// JobFilterRequest query parameters for the read API
type JobFilterRequest struct {
	Category string `query:"category"`
	Status   string `query:"status"`
	State    string `query:"state"`
	Search   string `query:"search"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// Normalize clamps pagination to sane bounds: page is 1-indexed, limit capped
// at MaxPageSize, status defaults to PUBLISHED for the public listing.
func (r *JobFilterRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 20
	}
	if r.Limit > MaxPageSize {
		r.Limit = MaxPageSize
	}
	if r.Status == "" {
		r.Status = string(models.JobStatusPublished)
	}
}

// CreateJobRequest manual admin entry
type CreateJobRequest struct {
	Title         string     `json:"title" validate:"required,min=10,max=255"`
	Organization  string     `json:"organization" validate:"required,min=2,max=255"`
	Category      string     `json:"category" validate:"required,oneof=Govt PSU Railway Teaching Police Defence Banking IT Private Result AdmitCard"`
	Qualification string     `json:"qualification" validate:"max=255"`
	Location      string     `json:"location" validate:"max=100"`
	Experience    string     `json:"experience" validate:"max=50"`
	Salary        string     `json:"salary" validate:"max=100"`
	Vacancies     string     `json:"vacancies" validate:"max=50"`
	AgeLimit      string     `json:"ageLimit" validate:"max=100"`
	LastDate      *time.Time `json:"lastDate"`
	ApplyLink     string     `json:"applyLink" validate:"omitempty,url"`
	SourceURL     string     `json:"sourceUrl" validate:"omitempty,url"`
	Description   string     `json:"description"`
	Skills        []string   `json:"skills"`
	Publish       bool       `json:"publish"`
}

// UpdateStatusRequest admin approval surface
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PUBLISHED EXPIRED ARCHIVED"`
}

// JobResponse public listing shape
type JobResponse struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Organization  string     `json:"organization"`
	PostName      string     `json:"postName,omitempty"`
	Category      string     `json:"category"`
	Qualification string     `json:"qualification,omitempty"`
	Location      string     `json:"location"`
	State         string     `json:"state,omitempty"`
	Experience    string     `json:"experience,omitempty"`
	Skills        []string   `json:"skills,omitempty"`
	Salary        string     `json:"salary,omitempty"`
	Vacancies     string     `json:"vacancies,omitempty"`
	AgeLimit      string     `json:"ageLimit,omitempty"`
	LastDate      *time.Time `json:"lastDate,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	Status        string     `json:"status"`
	IsVerified    bool       `json:"isVerified"`
	SourceURL     string     `json:"sourceUrl,omitempty"`
	ApplyLink     string     `json:"applyLink,omitempty"`
	Description   string     `json:"description,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	Views         int64      `json:"views"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// JobToJobResponse maps the entity to the public shape
func JobToJobResponse(job *models.Job) *JobResponse {
	return &JobResponse{
		ID:            job.ID.String(),
		Slug:          job.Slug,
		Title:         job.Title,
		Organization:  job.Organization,
		PostName:      job.PostName,
		Category:      string(job.Category),
		Qualification: job.Qualification,
		Location:      job.Location,
		State:         job.State,
		Experience:    job.Experience,
		Skills:        job.Skills,
		Salary:        job.Salary,
		Vacancies:     job.Vacancies,
		AgeLimit:      job.AgeLimit,
		LastDate:      job.LastDate,
		ExpiresAt:     job.ExpiresAt,
		Status:        string(job.Status),
		IsVerified:    job.IsVerified,
		SourceURL:     job.SourceURL,
		ApplyLink:     job.ApplyLink,
		Description:   job.Description,
		Tags:          job.Tags,
		Views:         job.Views,
		CreatedAt:     job.CreatedAt,
	}
}

// JobsToJobResponses maps a page of entities
func JobsToJobResponses(jobs []*models.Job) []*JobResponse {
	responses := make([]*JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, JobToJobResponse(job))
	}
	return responses
}
