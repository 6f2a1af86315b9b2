package job

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *JobPosting) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*JobPosting, error)

	// IncrementViewCount adds one view to the job
	IncrementViewCount(ctx context.Context, id kernel.JobID) error

	// Search lists jobs matching the request filters, newest posting first
	Search(ctx context.Context, req SearchJobsRequest) (*kernel.Paginated[JobPosting], error)

	// UpdateStatus changes the status of a job
	UpdateStatus(ctx context.Context, id kernel.JobID, status JobStatus, updatedAt time.Time) error

	// Update saves the editable fields of a job
	Update(ctx context.Context, job *JobPosting) error

	// Delete removes a job
	Delete(ctx context.Context, id kernel.JobID) error

	// ListByIDs returns the jobs among ids that exist, in no particular order
	ListByIDs(ctx context.Context, ids []kernel.JobID) ([]JobPosting, error)

	// ListActive returns every active job, newest posting first
	ListActive(ctx context.Context) ([]JobPosting, error)
}
