package docreader

import (
	"net/http"

	"github.com/Abraxas-365/hirematch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("DOCUMENT")

var (
	CodeUnsupportedFormat = ErrRegistry.Register("UNSUPPORTED_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Unsupported document format")
	CodeExtractionFailed  = ErrRegistry.Register("EXTRACTION_FAILED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Failed to extract text from document")
)

func ErrUnsupportedFormat() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFormat)
}

func ErrExtractionFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeExtractionFailed, cause)
}
