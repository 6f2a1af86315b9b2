package job

import (
	"net/http"

	"github.com/Abraxas-365/hirematch/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeJobAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Job already exists")
	CodeInvalidJobData   = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid job data")
	CodeInvalidStatus    = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid job status")
	CodeStatusUnchanged  = ErrRegistry.Register("STATUS_UNCHANGED", errx.TypeBusiness, http.StatusConflict, "Job already has this status")
	CodeNotOwner         = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Unauthorized to update this job")
	CodeJobSaveFailed    = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save job")
	CodeJobQueryFailed   = ErrRegistry.Register("QUERY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to query jobs")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyExists)
}

func ErrInvalidJobData() *errx.Error {
	return ErrRegistry.New(CodeInvalidJobData)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrStatusUnchanged() *errx.Error {
	return ErrRegistry.New(CodeStatusUnchanged)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrJobSaveFailed() *errx.Error {
	return ErrRegistry.New(CodeJobSaveFailed)
}

func ErrJobQueryFailed() *errx.Error {
	return ErrRegistry.New(CodeJobQueryFailed)
}
