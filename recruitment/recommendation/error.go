package recommendation

import (
	"net/http"

	"github.com/Abraxas-365/hirematch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RECOMMENDATION")

var (
	CodeInvalidWeights     = ErrRegistry.Register("INVALID_WEIGHTS", errx.TypeValidation, http.StatusBadRequest, "Scoring weights must be non-negative and sum to 1")
	CodeProfileUnavailable = ErrRegistry.Register("PROFILE_UNAVAILABLE", errx.TypeInternal, http.StatusInternalServerError, "Failed to load candidate profile")
	CodeCatalogUnavailable = ErrRegistry.Register("CATALOG_UNAVAILABLE", errx.TypeInternal, http.StatusInternalServerError, "Failed to load job catalog")
)

func ErrInvalidWeights() *errx.Error {
	return ErrRegistry.New(CodeInvalidWeights)
}

func ErrProfileUnavailable() *errx.Error {
	return ErrRegistry.New(CodeProfileUnavailable)
}

func ErrCatalogUnavailable() *errx.Error {
	return ErrRegistry.New(CodeCatalogUnavailable)
}
