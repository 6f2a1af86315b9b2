package resume

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
)

// Parser turns a stored resume document into a structured profile.
// Implementations are selected once at startup.
type Parser interface {
	Parse(ctx context.Context, path string, format string) (*ParseResult, error)
}

type Repository interface {
	// CreateActive stores r as the user's only active resume, deactivating the others
	CreateActive(ctx context.Context, r *Resume) error

	// GetByID retrieves a resume by ID
	GetByID(ctx context.Context, id kernel.ResumeID) (*Resume, error)

	// GetActiveByUserID retrieves the user's active resume
	GetActiveByUserID(ctx context.Context, userID kernel.UserID) (*Resume, error)

	// ListByUserID lists a user's resumes, newest first
	ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Resume], error)

	// SetActive makes id the user's only active resume
	SetActive(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) error

	// Delete deletes a resume and its skill rows
	Delete(ctx context.Context, id kernel.ResumeID) error
}

// TaskStore keeps the state of background parse tasks
type TaskStore interface {
	Save(ctx context.Context, task *ParseTask) error
	Get(ctx context.Context, id kernel.TaskID) (*ParseTask, error)
}

// TaskQueue defines the interface for parse task queue operations
type TaskQueue interface {
	// Enqueue adds a task to the queue
	Enqueue(ctx context.Context, taskID kernel.TaskID, payload any) error

	// Dequeue gets a task from the queue, blocking up to timeout.
	// It returns nil data when the timeout elapses.
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// Size returns the number of queued tasks
	Size(ctx context.Context) (int64, error)
}
