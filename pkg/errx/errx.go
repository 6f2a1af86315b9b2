package errx

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Type classifies an error independently of its domain code
type Type string

const (
	TypeInternal      Type = "INTERNAL"
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeExternal      Type = "EXTERNAL"
)

// Code is a fully qualified error code such as "RESUME.NOT_FOUND"
type Code string

func (c Code) String() string { return string(c) }

// Error is the structured error returned across package boundaries
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by code
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithDetail returns a copy of the error carrying an extra detail
func (e *Error) WithDetail(key string, value any) *Error {
	cp := e.clone()
	cp.Details[key] = value
	return cp
}

// WithDetails merges details into a copy of the error
func (e *Error) WithDetails(details map[string]any) *Error {
	cp := e.clone()
	for k, v := range details {
		cp.Details[k] = v
	}
	return cp
}

// WithCause attaches an underlying error
func (e *Error) WithCause(err error) *Error {
	cp := e.clone()
	cp.Cause = err
	return cp
}

// ToHTTPResponse renders the error as a JSON-friendly body
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   e.Message,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

func (e *Error) clone() *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	return &Error{
		Code:       e.Code,
		Type:       e.Type,
		Message:    e.Message,
		HTTPStatus: e.HTTPStatus,
		Details:    details,
		Cause:      e.Cause,
	}
}

// ============================================================================
// Registry
// ============================================================================

type definition struct {
	typ        Type
	httpStatus int
	message    string
}

// Registry holds the error codes of one domain
type Registry struct {
	prefix string
	mu     sync.RWMutex
	defs   map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register declares a code and returns its qualified form
func (r *Registry) Register(code string, typ Type, httpStatus int, message string) Code {
	qualified := Code(r.prefix + "." + code)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[qualified] = definition{typ: typ, httpStatus: httpStatus, message: message}
	return qualified
}

// New builds an error for a registered code
func (r *Registry) New(code Code) *Error {
	r.mu.RLock()
	def, ok := r.defs[code]
	r.mu.RUnlock()

	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			Message:    "unregistered error code",
			HTTPStatus: http.StatusInternalServerError,
			Details:    map[string]any{},
		}
	}

	return &Error{
		Code:       code,
		Type:       def.typ,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
		Details:    map[string]any{},
	}
}

// NewWithCause builds an error for a registered code wrapping err
func (r *Registry) NewWithCause(code Code, err error) *Error {
	e := r.New(code)
	e.Cause = err
	return e
}

// ============================================================================
// Helpers
// ============================================================================

// Wrap turns an arbitrary error into an *Error. Existing *Error values are kept.
func Wrap(err error, message string, typ Type) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Code:       Code(typ),
		Type:       typ,
		Message:    message,
		HTTPStatus: statusForType(typ),
		Details:    map[string]any{},
		Cause:      err,
	}
}

// IsCode reports whether err is, or wraps, an *Error with the given code
func IsCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// IsType reports whether err is, or wraps, an *Error of the given type
func IsType(err error, typ Type) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == typ
}

// HTTPStatus resolves the response status for any error
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus
	}
	return http.StatusInternalServerError
}

func statusForType(typ Type) int {
	switch typ {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
