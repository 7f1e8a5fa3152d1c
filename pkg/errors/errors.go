package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation"
	ErrorTypeUpstreamRejected    ErrorType = "upstream_rejected"
	ErrorTypeUpstreamUnavailable ErrorType = "upstream_unavailable"
	ErrorTypePaymentProvider     ErrorType = "payment_provider"
	ErrorTypeInternal            ErrorType = "internal"
)

// AppError represents a structured application error. The three
// upstream kinds stay distinct so operators can tell "their service is
// down" from "their service rejected this file".
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUpstreamRejectedError marks a structured failure reported by an
// upstream service; the upstream's own message is surfaced.
func NewUpstreamRejectedError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstreamRejected,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewUpstreamUnavailableError marks an upstream service that could not
// be reached at all.
func NewUpstreamUnavailableError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstreamUnavailable,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewPaymentProviderError marks a failure reported by the payment
// processor.
func NewPaymentProviderError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypePaymentProvider,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// GetMessage returns the user-facing message for an error. Errors that
// are not AppErrors fall back to a generic message so internals never
// leak to the caller.
func GetMessage(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Message
	}
	return "Unexpected error occurred"
}
