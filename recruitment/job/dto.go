package job

import (
	"strings"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ============================================================================
// Request DTOs
// ============================================================================

// CreateJobRequest - DTO for creating a new job posting
type CreateJobRequest struct {
	Title          string        `json:"title" validate:"required,max=255"`
	Company        string        `json:"company_name" validate:"required,max=255"`
	Description    string        `json:"description" validate:"required"`
	RequiredSkills []string      `json:"required_skills" validate:"required,min=1,dive,required"`
	ExperienceMin  *int          `json:"experience_min,omitempty" validate:"omitempty,gte=0"`
	ExperienceMax  *int          `json:"experience_max,omitempty" validate:"omitempty,gte=0"`
	Location       string        `json:"location,omitempty" validate:"max=255"`
	JobType        string        `json:"job_type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Internship Remote"`
	SalaryMin      *float64      `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax      *float64      `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	Deadline       *time.Time    `json:"deadline,omitempty"`
	Source         Source        `json:"source,omitempty" validate:"omitempty,oneof=internal scraped api"`
	ExternalURL    string        `json:"external_url,omitempty" validate:"omitempty,url"`
	PostedBy       kernel.UserID `json:"-"`
}

// Validate checks the struct tags and the salary and experience ranges
func (r *CreateJobRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrInvalidJobData().WithCause(err)
	}
	if r.ExperienceMin != nil && r.ExperienceMax != nil && *r.ExperienceMin > *r.ExperienceMax {
		return ErrInvalidJobData().
			WithDetail("experience_min", *r.ExperienceMin).
			WithDetail("experience_max", *r.ExperienceMax)
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMin > *r.SalaryMax {
		return ErrInvalidJobData().
			WithDetail("salary_min", *r.SalaryMin).
			WithDetail("salary_max", *r.SalaryMax)
	}
	return nil
}

// SearchJobsRequest - DTO for searching jobs.
// An empty Status searches active jobs.
type SearchJobsRequest struct {
	Query         string                   `json:"query,omitempty"` // Title or company
	Status        JobStatus                `json:"status,omitempty"`
	Location      string                   `json:"location,omitempty"`
	JobType       string                   `json:"job_type,omitempty"`
	Skills        []string                 `json:"skills,omitempty"`         // Any of
	ExperienceMax *int                     `json:"experience_max,omitempty"` // Jobs asking for at most this many years
	Pagination    kernel.PaginationOptions `json:"pagination"`
}

// Normalize fills defaults and trims filters
func (r SearchJobsRequest) Normalize() SearchJobsRequest {
	r.Query = strings.TrimSpace(r.Query)
	r.Location = strings.TrimSpace(r.Location)
	r.JobType = strings.TrimSpace(r.JobType)
	if r.Status == "" {
		r.Status = JobStatusActive
	}

	skills := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	r.Skills = skills
	r.Pagination = r.Pagination.Normalize()
	return r
}

// UpdateJobStatusRequest - DTO for closing, filling or reopening a job
type UpdateJobStatusRequest struct {
	Status JobStatus `json:"status" validate:"required,oneof=active closed filled"`
}

func (r *UpdateJobStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrInvalidStatus().WithCause(err).WithDetail("status", r.Status)
	}
	return nil
}

// UpdateJobRequest - DTO for editing a job. Nil fields are left unchanged.
type UpdateJobRequest struct {
	Title          *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Company        *string    `json:"company_name,omitempty" validate:"omitempty,min=1,max=255"`
	Description    *string    `json:"description,omitempty" validate:"omitempty,min=1"`
	RequiredSkills *[]string  `json:"required_skills,omitempty" validate:"omitempty,min=1,dive,required"`
	ExperienceMin  *int       `json:"experience_min,omitempty" validate:"omitempty,gte=0"`
	ExperienceMax  *int       `json:"experience_max,omitempty" validate:"omitempty,gte=0"`
	Location       *string    `json:"location,omitempty" validate:"omitempty,max=255"`
	JobType        *string    `json:"job_type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Internship Remote"`
	SalaryMin      *float64   `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax      *float64   `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	Status         *JobStatus `json:"status,omitempty" validate:"omitempty,oneof=active closed filled"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

func (r *UpdateJobRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrInvalidJobData().WithCause(err)
	}
	return nil
}

// ============================================================================
// Response DTOs
// ============================================================================

// JobResponse - DTO for returning full job data
type JobResponse struct {
	JobSummary
	Description string `json:"description"`
}

// JobSummary is the list view of a job, without its description
type JobSummary struct {
	ID             kernel.JobID  `json:"id"`
	PostedBy       kernel.UserID `json:"posted_by"`
	Title          string        `json:"title"`
	Company        string        `json:"company_name"`
	RequiredSkills []string      `json:"required_skills"`
	ExperienceMin  *int          `json:"experience_min"`
	ExperienceMax  *int          `json:"experience_max"`
	Location       string        `json:"location"`
	JobType        string        `json:"job_type"`
	SalaryMin      *float64      `json:"salary_min"`
	SalaryMax      *float64      `json:"salary_max"`
	PostedDate     *time.Time    `json:"posted_date"`
	Deadline       *time.Time    `json:"deadline"`
	Status         JobStatus     `json:"status"`
	Source         Source        `json:"source"`
	ExternalURL    string        `json:"external_url,omitempty"`
	ViewCount      int           `json:"view_count"`
}

// ToSummary converts a posting to its list view
func (j *JobPosting) ToSummary() JobSummary {
	skills := j.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return JobSummary{
		ID:             j.ID,
		PostedBy:       j.PostedBy,
		Title:          j.Title,
		Company:        j.Company,
		RequiredSkills: skills,
		ExperienceMin:  j.ExperienceMin,
		ExperienceMax:  j.ExperienceMax,
		Location:       j.Location,
		JobType:        j.JobType,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		PostedDate:     j.PostedDate,
		Deadline:       j.Deadline,
		Status:         j.Status,
		Source:         j.Source,
		ExternalURL:    j.ExternalURL,
		ViewCount:      j.ViewCount,
	}
}

// ToResponse converts a posting to its full view
func (j *JobPosting) ToResponse() *JobResponse {
	return &JobResponse{
		JobSummary:  j.ToSummary(),
		Description: j.Description,
	}
}

// PaginatedJobsResponse is a page of job summaries
type PaginatedJobsResponse = kernel.Paginated[JobSummary]
