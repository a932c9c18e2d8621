package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks,
// including an event date range where the start falls after the end.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the actor is known but lacks permission for the
// target entity. Scope checks produce this, never a raw repository error.
var ErrForbidden = errors.New("permission denied")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrActorNotFound indicates the acting user itself could not be resolved.
// Distinct from ErrNotFound for a target: without an actor no scope can be
// computed at all.
var ErrActorNotFound = errors.New("actor not found")

// ErrInvalidTransition indicates an event mutation that its current status
// forbids, e.g. approving an already-decided event.
var ErrInvalidTransition = errors.New("invalid event transition")

// AppError carries a status code alongside a message and an optional wrapped
// cause. The repository layer uses it for genuine I/O failures; expected
// outcomes use the sentinel errors above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError with the given code and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewConflictError creates an AppError wrapping ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError creates an AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
