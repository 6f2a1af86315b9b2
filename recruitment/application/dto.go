package application

import (
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ============================================================================
// Request DTOs
// ============================================================================

// ApplyRequest - DTO for applying to a job.
// An empty ResumeID applies with the active resume, if any.
type ApplyRequest struct {
	ResumeID    kernel.ResumeID `json:"resume_id,omitempty"`
	CoverLetter string          `json:"cover_letter,omitempty" validate:"max=10000"`
}

func (r *ApplyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrInvalidRequest().WithCause(err)
	}
	return nil
}

// ============================================================================
// Response DTOs
// ============================================================================

// ApplicationResponse is an application with a summary of its job.
// Job is nil when the job no longer exists.
type ApplicationResponse struct {
	ID          kernel.ApplicationID `json:"id"`
	JobID       kernel.JobID         `json:"job_id"`
	ResumeID    *kernel.ResumeID     `json:"resume_id"`
	Status      ApplicationStatus    `json:"status"`
	CoverLetter string               `json:"cover_letter,omitempty"`
	MatchScore  *float64             `json:"match_score"`
	AppliedAt   time.Time            `json:"applied_date"`
	Job         *job.JobSummary      `json:"job,omitempty"`
}

// ToResponse converts an application, attaching posting when known
func (a *Application) ToResponse(posting *job.JobPosting) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ResumeID:    a.ResumeID,
		Status:      a.Status,
		CoverLetter: a.CoverLetter,
		MatchScore:  a.MatchScore,
		AppliedAt:   a.AppliedAt,
	}
	if posting != nil {
		summary := posting.ToSummary()
		resp.Job = &summary
	}
	return resp
}

type MyApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Count        int                   `json:"count"`
}

// SavedJobItem is a saved job's summary and when it was saved
type SavedJobItem struct {
	job.JobSummary
	SavedAt time.Time `json:"saved_date"`
}

type SavedJobsResponse struct {
	Jobs  []SavedJobItem `json:"jobs"`
	Count int            `json:"count"`
}
