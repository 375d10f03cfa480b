// Package errors defines the API error taxonomy and its HTTP status mapping.
package errors

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Kind classifies an APIError.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// APIError is an error that is safe to report to API clients.
// Message is always shown; Cause is only exposed in debug mode.
type APIError struct {
	Kind       Kind
	HTTPStatus int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, status int, message string, cause error) *APIError {
	return &APIError{Kind: kind, HTTPStatus: status, Message: message, Cause: cause}
}

// NewErrValidation reports missing or malformed input.
func NewErrValidation(message string, cause error) *APIError {
	return newError(KindValidation, http.StatusBadRequest, message, cause)
}

// NewErrInvalidRequestBody reports a body that could not be decoded.
func NewErrInvalidRequestBody(cause error) *APIError {
	return NewErrValidation("Invalid request body", cause)
}

// NewErrEmailIsTaken reports a duplicate registration.
func NewErrEmailIsTaken(email string) *APIError {
	return newError(KindConflict, http.StatusBadRequest, "User with this email already exists",
		fmt.Errorf("email %q is already taken", email))
}

// NewErrInvalidCredentials is shared by unknown email and wrong password.
func NewErrInvalidCredentials() *APIError {
	return newError(KindAuth, http.StatusUnauthorized, "Invalid credentials", nil)
}

// NewErrMissingAuthorizationToken reports an absent bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return newError(KindAuth, http.StatusUnauthorized, "Access token is required", nil)
}

// NewErrInvalidAuthorizationToken reports a token that failed verification.
func NewErrInvalidAuthorizationToken(cause error) *APIError {
	return newError(KindAuth, http.StatusUnauthorized, "Invalid or expired token", cause)
}

// NewErrAccessDenied reports an ownership violation.
func NewErrAccessDenied(resourceID uuid.UUID) *APIError {
	return newError(KindForbidden, http.StatusForbidden, "Access denied",
		fmt.Errorf("resource %s belongs to another user", resourceID))
}

// NewErrResourceNotFound reports a missing resource.
func NewErrResourceNotFound(resourceID string) *APIError {
	return newError(KindNotFound, http.StatusNotFound, "Resource not found",
		fmt.Errorf("resource %s does not exist", resourceID))
}

// NewErrRouteNotFound reports an unmatched route.
func NewErrRouteNotFound(method, path string) *APIError {
	return newError(KindNotFound, http.StatusNotFound, "Route not found",
		fmt.Errorf("no route for %s %s", method, path))
}

// NewErrInternal wraps an unexpected fault.
func NewErrInternal(cause error) *APIError {
	return newError(KindInternal, http.StatusInternalServerError, "Internal server error", cause)
}
