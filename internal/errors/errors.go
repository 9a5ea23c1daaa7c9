package errors

import (
	"errors"
	"fmt"
)

// Common error types for the NextSteps client
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionAbsent      = errors.New("session absent")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")

	// Resource errors
	ErrProfileNotFound = errors.New("profile not found")

	// Transport errors
	ErrConnectivity = errors.New("failed to connect to the server")
	ErrRemote       = errors.New("remote service error")

	// Client-side precondition errors
	ErrValidation = errors.New("validation failed")
)

// StatusError carries the HTTP status of a failed remote call so callers
// can surface it to the user ("Status: N") without parsing transport details.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("status %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("status %d", e.Code)
}

func (e *StatusError) Unwrap() error {
	return ErrRemote
}

// StatusCode extracts the HTTP status from err's chain, if one is present.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

// UserFacing pairs a message safe to show the user with a taxonomy
// sentinel, so display code prints Message while errors.Is still
// classifies the failure.
type UserFacing struct {
	Message string
	Kind    error
}

func (e *UserFacing) Error() string {
	return e.Message
}

func (e *UserFacing) Unwrap() error {
	return e.Kind
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
