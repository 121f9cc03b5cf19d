// Package errors provides custom error types for the application.
package errors

import "errors"

// Recording errors. Both are advisory: the user re-records.
var (
	ErrRecordingTooShort = errors.New("Recording too short (min 10 s).")
	ErrRecordingTooLong  = errors.New("Recording too long (max 20 s).")
	ErrAlreadyRecording  = errors.New("recording already in progress")
	ErrNotRecording      = errors.New("no recording in progress")
	ErrRecordingNotValid = errors.New("a valid recording between 10 and 20 seconds is required")
)

// Noise check errors
var (
	ErrNoiseTooHigh      = errors.New("Please move to a quieter place")
	ErrNoiseTestRequired = errors.New("complete the noise test before continuing")
)

// Catalog errors
var (
	ErrCatalogUnavailable = errors.New("product catalog is unavailable, please try again later")
)

// Session and flow errors
var (
	ErrSessionNotFound         = errors.New("session not found")
	ErrInvalidTransition       = errors.New("invalid screen transition")
	ErrNoPreviousScreen        = errors.New("already at the first screen")
	ErrWrongScreen             = errors.New("operation not available on the current screen")
	ErrQualityChecksIncomplete = errors.New("all quality checks must be confirmed before submitting")
)

// Auth errors
var ErrUnauthorized = errors.New("unauthorized")
