package application

import (
	"context"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/candidate"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
)

type Repository interface {
	// Create creates a new application
	Create(ctx context.Context, application *Application) error

	// ExistsByUserAndJob checks if the user already applied to the job
	ExistsByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error)

	// ListByUserID lists a user's applications, newest first
	ListByUserID(ctx context.Context, userID kernel.UserID) ([]Application, error)
}

type SavedJobRepository interface {
	// Save bookmarks a job for a user
	Save(ctx context.Context, saved *SavedJob) error

	// ListByUserID lists a user's saved jobs, newest first
	ListByUserID(ctx context.Context, userID kernel.UserID) ([]SavedJob, error)
}

// JobCatalog provides the jobs users apply to
type JobCatalog interface {
	GetPosting(ctx context.Context, id kernel.JobID) (*job.JobPosting, error)
	GetPostings(ctx context.Context, ids []kernel.JobID) (map[kernel.JobID]job.JobPosting, error)
}

// ProfileSource provides the applicant's account profile
type ProfileSource interface {
	GetProfile(ctx context.Context, userID kernel.UserID) (*candidate.Profile, error)
}

// ResumeSource provides the resume an application is scored with
type ResumeSource interface {
	GetByID(ctx context.Context, id kernel.ResumeID) (*resume.Resume, error)
	GetActiveByUserID(ctx context.Context, userID kernel.UserID) (*resume.Resume, error)
}

// Scorer computes the match score stored with an application
type Scorer interface {
	Score(profile recommendation.CandidateProfile, posting job.JobPosting) recommendation.Result
}
