package job

import (
	"strings"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
)

// JobStatus represents the status of a job posting
type JobStatus string

const (
	JobStatusActive JobStatus = "active" // Accepting candidates, part of the recommendation catalog
	JobStatusClosed JobStatus = "closed" // No longer accepting candidates
	JobStatusFilled JobStatus = "filled" // Position has been filled
)

// IsValid reports whether s is a known status
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusFilled:
		return true
	}
	return false
}

// Source records where a posting came from
type Source string

const (
	SourceInternal Source = "internal"
	SourceScraped  Source = "scraped"
	SourceAPI      Source = "api"
)

const DefaultJobType = "Full-time"

// JobPosting is an opening candidates are matched against.
// An empty Location means the job is remote or the location is unspecified.
type JobPosting struct {
	ID             kernel.JobID  `db:"id" json:"id"`
	PostedBy       kernel.UserID `db:"posted_by" json:"posted_by"`
	Title          string        `db:"title" json:"title"`
	Company        string        `db:"company_name" json:"company_name"`
	Description    string        `db:"description" json:"description"`
	RequiredSkills []string      `db:"required_skills" json:"required_skills"`
	ExperienceMin  *int          `db:"experience_min" json:"experience_min,omitempty"` // years
	ExperienceMax  *int          `db:"experience_max" json:"experience_max,omitempty"` // years
	Location       string        `db:"location" json:"location"`
	JobType        string        `db:"job_type" json:"job_type"`
	SalaryMin      *float64      `db:"salary_min" json:"salary_min,omitempty"`
	SalaryMax      *float64      `db:"salary_max" json:"salary_max,omitempty"`
	PostedDate     *time.Time    `db:"posted_date" json:"posted_date,omitempty"`
	Deadline       *time.Time    `db:"deadline" json:"deadline,omitempty"`
	Status         JobStatus     `db:"status" json:"status"`
	Source         Source        `db:"source" json:"source"`
	ExternalURL    string        `db:"external_url" json:"external_url,omitempty"`
	ViewCount      int           `db:"view_count" json:"view_count"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the job is open and eligible for recommendations
func (j *JobPosting) IsActive() bool {
	return j.Status == JobStatusActive
}

// IsRemote checks if the job has no location
func (j *JobPosting) IsRemote() bool {
	return strings.TrimSpace(j.Location) == ""
}

// IsExpired checks if the application deadline has passed
func (j *JobPosting) IsExpired(now time.Time) bool {
	return j.Deadline != nil && now.After(*j.Deadline)
}

// Text joins title, description and required skills into one document
func (j *JobPosting) Text() string {
	return j.Title + " " + j.Description + " " + strings.Join(j.RequiredSkills, " ")
}

// ChangeStatus moves the job to status
func (j *JobPosting) ChangeStatus(status JobStatus, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus().WithDetail("status", status)
	}
	if j.Status == status {
		return ErrStatusUnchanged().WithDetail("status", status)
	}

	j.Status = status
	j.UpdatedAt = now
	return nil
}

// ApplyUpdate copies the fields present in req onto the job and checks the
// resulting salary and experience ranges
func (j *JobPosting) ApplyUpdate(req UpdateJobRequest, now time.Time) error {
	if req.Title != nil {
		j.Title = strings.TrimSpace(*req.Title)
	}
	if req.Company != nil {
		j.Company = strings.TrimSpace(*req.Company)
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.RequiredSkills != nil {
		j.RequiredSkills = append([]string(nil), (*req.RequiredSkills)...)
	}
	if req.ExperienceMin != nil {
		j.ExperienceMin = req.ExperienceMin
	}
	if req.ExperienceMax != nil {
		j.ExperienceMax = req.ExperienceMax
	}
	if req.Location != nil {
		j.Location = strings.TrimSpace(*req.Location)
	}
	if req.JobType != nil {
		j.JobType = *req.JobType
	}
	if req.SalaryMin != nil {
		j.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		j.SalaryMax = req.SalaryMax
	}
	if req.Status != nil {
		j.Status = *req.Status
	}
	if req.Deadline != nil {
		j.Deadline = req.Deadline
	}

	if j.ExperienceMin != nil && j.ExperienceMax != nil && *j.ExperienceMin > *j.ExperienceMax {
		return ErrInvalidJobData().
			WithDetail("experience_min", *j.ExperienceMin).
			WithDetail("experience_max", *j.ExperienceMax)
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return ErrInvalidJobData().
			WithDetail("salary_min", *j.SalaryMin).
			WithDetail("salary_max", *j.SalaryMax)
	}

	j.UpdatedAt = now
	return nil
}
