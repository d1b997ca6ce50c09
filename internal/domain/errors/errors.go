// Package errors defines the application-level error model: a small AppError
// interface carrying an HTTP status, a stable business error code, and a
// user-facing message, plus the predefined error values the lifecycle rules
// produce. The delivery layer maps these to responses without inspecting
// message strings.
package errors

import (
	"net/http"

	"github.com/Sebastian609/SOA-PARTNERS/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrValidationFailed covers missing or malformed required input fields.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// ErrDuplicateEmail is returned by creation when an active, non-deleted
	// partner already holds the email.
	ErrDuplicateEmail = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_EMAIL",
		"a partner with this email already exists",
		"",
	)

	// ErrEmailConflict is returned by update when the new email belongs to a
	// different active partner.
	ErrEmailConflict = NewBaseError(
		http.StatusConflict,
		"EMAIL_CONFLICT",
		"email is already in use by another partner",
		"",
	)

	// ErrTokenConflict is returned by update when the new token belongs to a
	// different partner of any status.
	ErrTokenConflict = NewBaseError(
		http.StatusConflict,
		"TOKEN_CONFLICT",
		"token is already in use by another partner",
		"",
	)

	// ErrTokenExhausted signals that the token generation retry budget ran
	// out. This is a server-side failure, not a client input error.
	ErrTokenExhausted = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_EXHAUSTED",
		"unable to generate a unique token after multiple attempts",
		"",
	)

	// ErrSamePassword rejects a password change to the current password.
	ErrSamePassword = NewBaseError(
		http.StatusBadRequest,
		"SAME_PASSWORD",
		"new password must be different from the current one",
		"",
	)

	// ErrInvalidCredentials is deliberately opaque: it does not distinguish a
	// missing account from a wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	// ErrNotFound is returned when the targeted partner does not exist.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_NOT_FOUND",
		"partner not found",
		"",
	)

	// ErrConflict is the fallback when the database unique constraints reject
	// a write that slipped past the pre-checks.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	// ErrInternalError is the generic server-side failure.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
