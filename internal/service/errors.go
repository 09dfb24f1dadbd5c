package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps them to status codes.
var (
	// ErrPostNotFound indicates that the requested post does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrPostNotFound = fmt.Errorf("%w: post not found", store.ErrNotFound)

	// ErrEmptyUpdate indicates an upsert body with no fields to set.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyUpdate = fmt.Errorf("%w: update has no fields", domain.ErrValidation)
)

// ServiceError wraps errors from a service operation with context.
type ServiceError struct {
	// Service is the service that failed (e.g., "post", "wishlist")
	Service string
	// Operation is the operation that failed (e.g., "list", "upsert")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// It returns ErrPostNotFound directly when err reports a missing post.
func NewServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
