package resume

import (
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// ParseTask tracks one asynchronous resume upload. Tasks run once.
type ParseTask struct {
	ID       kernel.TaskID       `json:"id"`
	UserID   kernel.UserID       `json:"user_id"`
	Request  UploadResumeRequest `json:"request"`
	Status   TaskStatus          `json:"status"`
	ResumeID *kernel.ResumeID    `json:"resume_id,omitempty"`

	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func NewParseTask(id kernel.TaskID, req UploadResumeRequest) *ParseTask {
	return &ParseTask{
		ID:        id,
		UserID:    req.UserID,
		Request:   req,
		Status:    TaskStatusPending,
		CreatedAt: time.Now(),
	}
}

func (t *ParseTask) MarkProcessing() {
	now := time.Now()
	t.Status = TaskStatusProcessing
	t.StartedAt = &now
}

func (t *ParseTask) MarkCompleted(resumeID kernel.ResumeID) {
	now := time.Now()
	t.Status = TaskStatusCompleted
	t.ResumeID = &resumeID
	t.CompletedAt = &now
}

func (t *ParseTask) MarkFailed(code, message string) {
	now := time.Now()
	t.Status = TaskStatusFailed
	t.ErrorCode = code
	t.ErrorMessage = message
	t.CompletedAt = &now
}

func (t *ParseTask) IsFinished() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusFailed
}

// TaskStatusResponse is returned to clients polling a task
type TaskStatusResponse struct {
	TaskID   kernel.TaskID    `json:"task_id"`
	Status   TaskStatus       `json:"status"`
	Message  string           `json:"message"`
	ResumeID *kernel.ResumeID `json:"resume_id,omitempty"`
	Error    *TaskError       `json:"error,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type TaskError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (t *ParseTask) ToStatusResponse() *TaskStatusResponse {
	resp := &TaskStatusResponse{
		TaskID:      t.ID,
		Status:      t.Status,
		ResumeID:    t.ResumeID,
		CreatedAt:   t.CreatedAt,
		StartedAt:   t.StartedAt,
		CompletedAt: t.CompletedAt,
	}

	switch t.Status {
	case TaskStatusPending:
		resp.Message = "Resume queued for processing"
	case TaskStatusProcessing:
		resp.Message = "Resume is being parsed"
	case TaskStatusCompleted:
		resp.Message = "Resume parsed successfully"
	case TaskStatusFailed:
		resp.Message = "Resume parsing failed"
		resp.Error = &TaskError{Code: t.ErrorCode, Message: t.ErrorMessage}
	}
	return resp
}
