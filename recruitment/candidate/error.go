package candidate

import (
	"net/http"

	"github.com/Abraxas-365/hirematch/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeInvalidProfileData = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid profile data")
	CodeProfileQueryFailed = ErrRegistry.Register("QUERY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load candidate profile")
	CodeProfileSaveFailed  = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save candidate profile")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrInvalidProfileData() *errx.Error {
	return ErrRegistry.New(CodeInvalidProfileData)
}

func ErrProfileQueryFailed() *errx.Error {
	return ErrRegistry.New(CodeProfileQueryFailed)
}

func ErrProfileSaveFailed() *errx.Error {
	return ErrRegistry.New(CodeProfileSaveFailed)
}
