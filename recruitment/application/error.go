package application

import (
	"net/http"

	"github.com/Abraxas-365/hirematch/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeAlreadyApplied = ErrRegistry.Register("ALREADY_APPLIED", errx.TypeConflict, http.StatusConflict, "Already applied to this job")
	CodeAlreadySaved   = ErrRegistry.Register("ALREADY_SAVED", errx.TypeConflict, http.StatusConflict, "Job already saved")
	CodeJobNotActive   = ErrRegistry.Register("JOB_NOT_ACTIVE", errx.TypeNotFound, http.StatusNotFound, "Job not found or inactive")
	CodeNotJobSeeker   = ErrRegistry.Register("NOT_JOB_SEEKER", errx.TypeAuthorization, http.StatusForbidden, "Only job seekers can apply")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeSaveFailed     = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save application")
	CodeQueryFailed    = ErrRegistry.Register("QUERY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to query applications")
)

// Helper functions
func ErrAlreadyApplied() *errx.Error {
	return ErrRegistry.New(CodeAlreadyApplied)
}

func ErrAlreadySaved() *errx.Error {
	return ErrRegistry.New(CodeAlreadySaved)
}

func ErrJobNotActive() *errx.Error {
	return ErrRegistry.New(CodeJobNotActive)
}

func ErrNotJobSeeker() *errx.Error {
	return ErrRegistry.New(CodeNotJobSeeker)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrSaveFailed() *errx.Error {
	return ErrRegistry.New(CodeSaveFailed)
}

func ErrQueryFailed() *errx.Error {
	return ErrRegistry.New(CodeQueryFailed)
}
