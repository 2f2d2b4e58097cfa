// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Dataset errors.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrNoDateColumn     = errors.New("order date column not found")

	// Request errors.
	ErrNoDimensions   = errors.New("no row or column dimensions chosen")
	ErrUnknownMeasure = errors.New("unknown measure")
	ErrUnknownAggFunc = errors.New("unknown aggregation function")
	ErrOutOfRange     = errors.New("value out of range")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage extracts the user-facing message from an error chain.
// Falls back to the full error text when no UserError is present.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
