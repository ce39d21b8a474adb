// Package errors provides structured error handling with user-friendly messages.
package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors for better user experience.
type ErrorType string

const (
	// Configuration errors
	ConfigNotFound ErrorType = "config_not_found"
	ConfigInvalid  ErrorType = "config_invalid"

	// Storage errors
	StorageRead  ErrorType = "storage_read"
	StorageWrite ErrorType = "storage_write"

	// Terminal errors
	TerminalUnavailable ErrorType = "terminal_unavailable"

	// Account errors
	AuthFailed   ErrorType = "auth_failed"
	UserExists   ErrorType = "user_exists"
	UserNotFound ErrorType = "user_not_found"

	// Domain errors
	SpreadNotFound ErrorType = "spread_not_found"
	CardNotFound   ErrorType = "card_not_found"

	// Validation errors
	ValidationFailed ErrorType = "validation_failed"

	// Internal errors
	InternalError ErrorType = "internal_error"
)

// SeerError represents a structured error with user-friendly messaging.
type SeerError struct {
	Type        ErrorType `json:"type"`
	Message     string    `json:"message"`
	Details     string    `json:"details,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Cause       error     `json:"-"`
}

func (e *SeerError) Error() string {
	var parts []string

	parts = append(parts, e.Message)

	if e.Details != "" {
		parts = append(parts, fmt.Sprintf("Details: %s", e.Details))
	}

	if len(e.Suggestions) > 0 {
		parts = append(parts, fmt.Sprintf("Suggestions:\n  • %s", strings.Join(e.Suggestions, "\n  • ")))
	}

	return strings.Join(parts, "\n\n")
}

func (e *SeerError) Unwrap() error {
	return e.Cause
}

// New creates a new SeerError with the given type and message.
func New(errorType ErrorType, message string) *SeerError {
	return &SeerError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap creates a new SeerError that wraps an existing error.
func Wrap(err error, errorType ErrorType, message string) *SeerError {
	return &SeerError{
		Type:    errorType,
		Message: message,
		Cause:   err,
	}
}

// WithDetails adds detailed information to an error.
func (e *SeerError) WithDetails(details string) *SeerError {
	e.Details = details
	return e
}

// WithSuggestion adds a helpful suggestion to an error.
func (e *SeerError) WithSuggestion(suggestion string) *SeerError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple helpful suggestions to an error.
func (e *SeerError) WithSuggestions(suggestions []string) *SeerError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// ConfigNotFoundError creates an error for a configuration file that cannot be read.
func ConfigNotFoundError(path string) *SeerError {
	return New(ConfigNotFound, "Configuration file not found").
		WithDetails(fmt.Sprintf("Looking for config at: %s", path)).
		WithSuggestions([]string{
			"Run 'seer config init' to create a new configuration",
			"Check if the config file exists and is readable",
		})
}

// TerminalUnavailableError creates an error for a terminal that cannot be driven interactively.
func TerminalUnavailableError(backend string, err error) *SeerError {
	return Wrap(err, TerminalUnavailable, "Interactive terminal is not available").
		WithDetails(fmt.Sprintf("Backend: %s", backend)).
		WithSuggestions([]string{
			"Run seer from an interactive terminal",
			"Try 'display.backend: stream' in the configuration",
		})
}

// StorageWriteError creates an error for a collection that could not be persisted.
func StorageWriteError(path string, err error) *SeerError {
	return Wrap(err, StorageWrite, "Failed to save data").
		WithDetails(fmt.Sprintf("Path: %s", path))
}

// ValidationError creates an error for validation failures.
func ValidationError(field string, value string, reason string) *SeerError {
	return New(ValidationFailed, fmt.Sprintf("Validation failed for '%s'", field)).
		WithDetails(fmt.Sprintf("Value '%s' is invalid: %s", value, reason))
}

// AuthFailedError creates an error for a rejected login.
func AuthFailedError() *SeerError {
	return New(AuthFailed, "The spirits do not recognise you").
		WithDetails("Unknown username or wrong password")
}

// SpreadNotFoundError creates an error for an unknown spread type.
func SpreadNotFoundError(spread string) *SeerError {
	return New(SpreadNotFound, fmt.Sprintf("No spread defined for %s", spread))
}

// IsType checks if an error is of a specific SeerError type.
func IsType(err error, errorType ErrorType) bool {
	if seerErr, ok := err.(*SeerError); ok {
		return seerErr.Type == errorType
	}
	return false
}

// GetType returns the ErrorType of a SeerError, or InternalError for other errors.
func GetType(err error) ErrorType {
	if seerErr, ok := err.(*SeerError); ok {
		return seerErr.Type
	}
	return InternalError
}
