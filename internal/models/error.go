package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds surfaced to callers. Match them with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("admin credential not configured")
	ErrTransport  = errors.New("transport failure")
)

// ValidationError reports which field broke an entity invariant.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundf wraps ErrNotFound with the missing entity and id
func NotFoundf(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// TransportError keeps the raw response of a failed remote call for diagnostics.
type TransportError struct {
	Method string
	Path   string
	Status int // 0 when the backend was unreachable
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("API %s %s unreachable: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("API %s %s failed (%d): %s", e.Method, e.Path, e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is lets callers classify remote failures with the same sentinels as local ones.
func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return true
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrConflict:
		return e.Status == http.StatusConflict
	case ErrValidation:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	case ErrAuth:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	}
	return false
}

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeBadGateway       = "BAD_GATEWAY"
	ErrCodeInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// APIErrorFor classifies err into an HTTP status and response body.
func APIErrorFor(err error) (int, APIError) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, NewAPIError(ErrCodeValidationFailed, verr.Message, map[string]interface{}{"field": verr.Field})
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, NewAPIError(ErrCodeValidationFailed, err.Error())
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, NewAPIError(ErrCodeNotFound, err.Error())
	case errors.Is(err, ErrConflict):
		return http.StatusConflict, NewAPIError(ErrCodeConflict, err.Error())
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, err.Error())
	case errors.Is(err, ErrTransport):
		return http.StatusBadGateway, NewAPIError(ErrCodeBadGateway, err.Error())
	default:
		return http.StatusInternalServerError, NewAPIError(ErrCodeInternalServer, err.Error())
	}
}
