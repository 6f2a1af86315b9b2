package skill

import (
	"net/http"

	"github.com/Abraxas-365/hirematch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SKILL")

var (
	CodeTaxonomyLoadFailed = ErrRegistry.Register("TAXONOMY_LOAD_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load skill taxonomy")
)

func ErrTaxonomyLoadFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeTaxonomyLoadFailed, cause)
}
