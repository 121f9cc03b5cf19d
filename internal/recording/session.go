// Package recording tracks press-and-hold recording sessions and enforces the
// duration policy for text reading tasks.
package recording

import (
	"time"

	apperrors "humanness-tasks/internal/errors"
)

const (
	// MinDuration is the shortest accepted recording, in seconds.
	MinDuration = 10
	// MaxDuration is the longest accepted recording, in seconds.
	MaxDuration = 20
	// MaxElapsed caps the elapsed counter while the button is held.
	MaxElapsed = 30
)

// State is the lifecycle state of a recording session.
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StateStopped   State = "stopped"
)

// Outcome is the classification of a stopped recording.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeValid    Outcome = "valid"
	OutcomeTooShort Outcome = "too_short"
	OutcomeTooLong  Outcome = "too_long"
)

// Classify maps a duration in seconds to its outcome and advisory error.
func Classify(seconds int) (Outcome, error) {
	switch {
	case seconds < MinDuration:
		return OutcomeTooShort, apperrors.ErrRecordingTooShort
	case seconds > MaxDuration:
		return OutcomeTooLong, apperrors.ErrRecordingTooLong
	default:
		return OutcomeValid, nil
	}
}

// Session is the state of one recording attempt. The zero value is idle.
type Session struct {
	State     State     `json:"state" example:"stopped"`
	StartedAt time.Time `json:"startedAt,omitempty"`
	Elapsed   int       `json:"elapsed" example:"15"`
	Outcome   Outcome   `json:"outcome,omitempty" example:"valid"`
	Message   string    `json:"message,omitempty" example:"Recording too short (min 10 s)."`
}

// Press starts a new recording at elapsed zero.
func (s *Session) Press(now time.Time) error {
	if s.State == StateRecording {
		return apperrors.ErrAlreadyRecording
	}

	*s = Session{
		State:     StateRecording,
		StartedAt: now,
	}
	return nil
}

// ElapsedAt returns the whole seconds recorded so far, capped at MaxElapsed.
func (s *Session) ElapsedAt(now time.Time) int {
	if s.State != StateRecording {
		return s.Elapsed
	}

	elapsed := int(now.Sub(s.StartedAt) / time.Second)
	if elapsed < 0 {
		return 0
	}
	if elapsed > MaxElapsed {
		return MaxElapsed
	}
	return elapsed
}

// Release stops the recording and classifies the elapsed time captured at
// release. A rejected recording returns the advisory error as well.
func (s *Session) Release(now time.Time) (Outcome, error) {
	if s.State != StateRecording {
		return OutcomeNone, apperrors.ErrNotRecording
	}

	s.Elapsed = s.ElapsedAt(now)
	s.State = StateStopped

	outcome, err := Classify(s.Elapsed)
	s.Outcome = outcome
	if err != nil {
		s.Message = err.Error()
	}
	return outcome, err
}

// Reset clears the session back to idle ("record again").
func (s *Session) Reset() {
	*s = Session{State: StateIdle}
}

// Submittable reports whether the session holds a valid, stopped recording.
func (s *Session) Submittable() bool {
	return s.State == StateStopped && s.Outcome == OutcomeValid
}

// Snapshot returns a copy with Elapsed resolved at now, for display.
func (s Session) Snapshot(now time.Time) Session {
	if s.State == "" {
		s.State = StateIdle
	}
	s.Elapsed = s.ElapsedAt(now)
	return s
}
