package recommendation

import (
	"context"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
)

// ResumeSource provides the candidate's active resume
type ResumeSource interface {
	GetActiveByUserID(ctx context.Context, userID kernel.UserID) (*resume.Resume, error)
}

// LocationSource provides the candidate's location, "" when unknown
type LocationSource interface {
	Location(ctx context.Context, userID kernel.UserID) (string, error)
}

// JobCatalog provides the jobs candidates are matched against
type JobCatalog interface {
	ListActive(ctx context.Context) ([]job.JobPosting, error)
	GetPosting(ctx context.Context, id kernel.JobID) (*job.JobPosting, error)
}
