package resume

import (
	"net/http"

	"github.com/Abraxas-365/hirematch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

// Error codes - Resume Operations
var (
	CodeResumeNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeResumeAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Resume already exists")
	CodeNoActiveResume      = ErrRegistry.Register("NO_ACTIVE_RESUME", errx.TypeNotFound, http.StatusNotFound, "No active resume found")
	CodeInvalidResumeData   = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid resume data")
	CodeResumeParseFailed   = ErrRegistry.Register("PARSE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to parse resume")
	CodeResumeSaveFailed    = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save resume")
	CodeResumeQueryFailed   = ErrRegistry.Register("QUERY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load resumes")
	CodeNotOwner            = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Resume does not belong to this user")
	CodeFileRequired        = ErrRegistry.Register("FILE_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "A resume file is required")
	CodeFileTooLarge        = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusRequestEntityTooLarge, "Resume file is too large")
	CodeInvalidFileFormat   = ErrRegistry.Register("INVALID_FILE_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Invalid file format")
	CodeStorageFailed       = ErrRegistry.Register("STORAGE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to store resume file")
)

// Error codes - Parse Task Operations
var (
	CodeTaskNotFound       = ErrRegistry.Register("TASK_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Parse task not found")
	CodeTaskUpdateFailed   = ErrRegistry.Register("TASK_UPDATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to update parse task")
	CodeTaskLoadFailed     = ErrRegistry.Register("TASK_LOAD_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load parse task")
	CodeQueueEnqueueFailed = ErrRegistry.Register("QUEUE_ENQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to enqueue parse task")
	CodeQueueDequeueFailed = ErrRegistry.Register("QUEUE_DEQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to dequeue parse task")
)

// Helper functions - Resume Operations
func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrResumeAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeResumeAlreadyExists)
}

func ErrNoActiveResume() *errx.Error {
	return ErrRegistry.New(CodeNoActiveResume)
}

func ErrInvalidResumeData() *errx.Error {
	return ErrRegistry.New(CodeInvalidResumeData)
}

func ErrResumeParseFailed() *errx.Error {
	return ErrRegistry.New(CodeResumeParseFailed)
}

func ErrResumeSaveFailed() *errx.Error {
	return ErrRegistry.New(CodeResumeSaveFailed)
}

func ErrResumeQueryFailed() *errx.Error {
	return ErrRegistry.New(CodeResumeQueryFailed)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrFileRequired() *errx.Error {
	return ErrRegistry.New(CodeFileRequired)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrInvalidFileFormat() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileFormat)
}

func ErrStorageFailed() *errx.Error {
	return ErrRegistry.New(CodeStorageFailed)
}

// Helper functions - Parse Task Operations
func ErrTaskNotFound() *errx.Error {
	return ErrRegistry.New(CodeTaskNotFound)
}

func ErrTaskUpdateFailed() *errx.Error {
	return ErrRegistry.New(CodeTaskUpdateFailed)
}

func ErrTaskLoadFailed() *errx.Error {
	return ErrRegistry.New(CodeTaskLoadFailed)
}

func ErrQueueEnqueueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueEnqueueFailed)
}

func ErrQueueDequeueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueDequeueFailed)
}
