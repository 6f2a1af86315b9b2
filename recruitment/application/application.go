package application

import (
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
)

// ApplicationStatus represents where a recruiter is with an application
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending" // Initial submission
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
)

// IsValid reports whether s is a known status
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

// Application is a candidate applying to one job. A user applies to a job at most once.
type Application struct {
	ID          kernel.ApplicationID `db:"id" json:"id"`
	UserID      kernel.UserID        `db:"user_id" json:"user_id"`
	JobID       kernel.JobID         `db:"job_id" json:"job_id"`
	ResumeID    *kernel.ResumeID     `db:"resume_id" json:"resume_id,omitempty"`
	Status      ApplicationStatus    `db:"status" json:"status"`
	CoverLetter string               `db:"cover_letter" json:"cover_letter,omitempty"`
	MatchScore  *float64             `db:"match_score" json:"match_score,omitempty"` // percent, nil without a resume
	AppliedAt   time.Time            `db:"applied_date" json:"applied_date"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasResume checks if a resume was attached
func (a *Application) HasResume() bool {
	return a.ResumeID != nil && !a.ResumeID.IsEmpty()
}

// IsOpen checks if the application still awaits a decision
func (a *Application) IsOpen() bool {
	return a.Status != ApplicationStatusRejected && a.Status != ApplicationStatusAccepted
}

// SavedJob is a job bookmarked by a user. A user saves a job at most once.
type SavedJob struct {
	UserID  kernel.UserID `db:"user_id" json:"user_id"`
	JobID   kernel.JobID  `db:"job_id" json:"job_id"`
	SavedAt time.Time     `db:"saved_date" json:"saved_date"`
}
