package auth

import (
	"net/http"

	"github.com/Abraxas-365/hirematch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeMissingToken      = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Missing authorization header")
	CodeInvalidToken      = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid or expired token")
	CodeInsufficientScope = ErrRegistry.Register("INSUFFICIENT_SCOPE", errx.TypeAuthorization, http.StatusForbidden, "Insufficient scope")
	CodeTokenGeneration   = ErrRegistry.Register("TOKEN_GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
)

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrInsufficientScope() *errx.Error {
	return ErrRegistry.New(CodeInsufficientScope)
}

func ErrTokenGeneration() *errx.Error {
	return ErrRegistry.New(CodeTokenGeneration)
}
