package usecase

import "errors"

// Sentinel errors raised at the service boundary and translated into
// HTTP statuses once, in the controller layer. A record that exists but
// belongs to another user surfaces as the same not-found error as a
// missing one, so existence is never leaked.
var (
	ErrUserNotFound       = errors.New("User not found")
	ErrWorkNotFound       = errors.New("Work not found")
	ErrSessionNotFound    = errors.New("Session not found")
	ErrReviewNotFound     = errors.New("Review not found")
	ErrUsernameTaken      = errors.New("Username already taken")
	ErrEmailRegistered    = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid username/email or password")
)

// ValidationError carries a top-level message and optional per-field
// messages for the error body.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) WithField(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}
