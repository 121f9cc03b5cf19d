package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordingErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrRecordingTooShort", ErrRecordingTooShort, "Recording too short (min 10 s)."},
		{"ErrRecordingTooLong", ErrRecordingTooLong, "Recording too long (max 20 s)."},
		{"ErrAlreadyRecording", ErrAlreadyRecording, "recording already in progress"},
		{"ErrNotRecording", ErrNotRecording, "no recording in progress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNoiseErrors(t *testing.T) {
	assert.Equal(t, "Please move to a quieter place", ErrNoiseTooHigh.Error())
	assert.Equal(t, "complete the noise test before continuing", ErrNoiseTestRequired.Error())
}

func TestFlowErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrSessionNotFound", ErrSessionNotFound, "session not found"},
		{"ErrInvalidTransition", ErrInvalidTransition, "invalid screen transition"},
		{"ErrNoPreviousScreen", ErrNoPreviousScreen, "already at the first screen"},
		{"ErrWrongScreen", ErrWrongScreen, "operation not available on the current screen"},
		{"ErrQualityChecksIncomplete", ErrQualityChecksIncomplete, "all quality checks must be confirmed before submitting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrRecordingTooShort, ErrRecordingTooLong, ErrAlreadyRecording, ErrNotRecording, ErrRecordingNotValid,
		ErrNoiseTooHigh, ErrNoiseTestRequired, ErrCatalogUnavailable,
		ErrSessionNotFound, ErrInvalidTransition, ErrNoPreviousScreen, ErrWrongScreen, ErrQualityChecksIncomplete,
		ErrUnauthorized,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestWrappedErrorsMatch(t *testing.T) {
	wrapped := fmt.Errorf("fetch catalog: %w", ErrCatalogUnavailable)

	assert.True(t, errors.Is(wrapped, ErrCatalogUnavailable))
	assert.False(t, errors.Is(wrapped, ErrSessionNotFound))
}
