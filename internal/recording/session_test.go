package recording

import (
	"testing"
	"time"

	apperrors "humanness-tasks/internal/errors"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	for d := 0; d <= MaxElapsed; d++ {
		outcome, err := Classify(d)

		switch {
		case d < 10:
			assert.Equal(t, OutcomeTooShort, outcome, "duration %d", d)
			assert.ErrorIs(t, err, apperrors.ErrRecordingTooShort)
		case d > 20:
			assert.Equal(t, OutcomeTooLong, outcome, "duration %d", d)
			assert.ErrorIs(t, err, apperrors.ErrRecordingTooLong)
		default:
			assert.Equal(t, OutcomeValid, outcome, "duration %d", d)
			assert.NoError(t, err)
		}
	}
}

func TestSession_Press(t *testing.T) {
	clock := clockwork.NewFakeClock()

	t.Run("starts recording from idle", func(t *testing.T) {
		var s Session

		require.NoError(t, s.Press(clock.Now()))

		assert.Equal(t, StateRecording, s.State)
		assert.Equal(t, 0, s.ElapsedAt(clock.Now()))
	})

	t.Run("rejects press while recording", func(t *testing.T) {
		var s Session
		require.NoError(t, s.Press(clock.Now()))

		err := s.Press(clock.Now())

		assert.ErrorIs(t, err, apperrors.ErrAlreadyRecording)
	})

	t.Run("restarts at zero after a rejected recording", func(t *testing.T) {
		var s Session
		start := clock.Now()
		require.NoError(t, s.Press(start))
		_, err := s.Release(start.Add(5 * time.Second))
		require.ErrorIs(t, err, apperrors.ErrRecordingTooShort)

		require.NoError(t, s.Press(start.Add(6*time.Second)))

		assert.Equal(t, StateRecording, s.State)
		assert.Equal(t, 0, s.ElapsedAt(start.Add(6*time.Second)))
		assert.Empty(t, s.Message)
		assert.Equal(t, OutcomeNone, s.Outcome)
	})
}

func TestSession_ElapsedAt(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var s Session
	require.NoError(t, s.Press(clock.Now()))

	clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1, s.ElapsedAt(clock.Now()))

	clock.Advance(12 * time.Second)
	assert.Equal(t, 13, s.ElapsedAt(clock.Now()))

	clock.Advance(time.Minute)
	assert.Equal(t, MaxElapsed, s.ElapsedAt(clock.Now()), "elapsed caps at 30 seconds")
}

func TestSession_Release(t *testing.T) {
	tests := []struct {
		name            string
		held            time.Duration
		expectedElapsed int
		expectedOutcome Outcome
		expectedErr     error
		expectedMessage string
	}{
		{"valid at 15s", 15 * time.Second, 15, OutcomeValid, nil, ""},
		{"valid at lower bound", 10 * time.Second, 10, OutcomeValid, nil, ""},
		{"valid at upper bound", 20*time.Second + 900*time.Millisecond, 20, OutcomeValid, nil, ""},
		{"too short at 8s", 8 * time.Second, 8, OutcomeTooShort, apperrors.ErrRecordingTooShort, "Recording too short (min 10 s)."},
		{"too short just under 10s", 9*time.Second + 999*time.Millisecond, 9, OutcomeTooShort, apperrors.ErrRecordingTooShort, "Recording too short (min 10 s)."},
		{"too long at 25s", 25 * time.Second, 25, OutcomeTooLong, apperrors.ErrRecordingTooLong, "Recording too long (max 20 s)."},
		{"too long is capped", 45 * time.Second, 30, OutcomeTooLong, apperrors.ErrRecordingTooLong, "Recording too long (max 20 s)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClock()
			var s Session
			require.NoError(t, s.Press(clock.Now()))
			clock.Advance(tt.held)

			outcome, err := s.Release(clock.Now())

			assert.Equal(t, tt.expectedOutcome, outcome)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, StateStopped, s.State)
			assert.Equal(t, tt.expectedElapsed, s.Elapsed)
			assert.Equal(t, tt.expectedMessage, s.Message)
			assert.Equal(t, tt.expectedOutcome == OutcomeValid, s.Submittable())
		})
	}

	t.Run("rejects release without press", func(t *testing.T) {
		var s Session

		outcome, err := s.Release(time.Now())

		assert.Equal(t, OutcomeNone, outcome)
		assert.ErrorIs(t, err, apperrors.ErrNotRecording)
	})

	t.Run("elapsed is frozen after release", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		var s Session
		require.NoError(t, s.Press(clock.Now()))
		clock.Advance(12 * time.Second)
		_, _ = s.Release(clock.Now())

		clock.Advance(time.Minute)

		assert.Equal(t, 12, s.ElapsedAt(clock.Now()))
	})
}

func TestSession_Reset(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var s Session
	require.NoError(t, s.Press(clock.Now()))
	clock.Advance(25 * time.Second)
	_, _ = s.Release(clock.Now())

	s.Reset()

	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, 0, s.Elapsed)
	assert.Equal(t, OutcomeNone, s.Outcome)
	assert.Empty(t, s.Message)
	assert.False(t, s.Submittable())
}

func TestSession_Snapshot(t *testing.T) {
	clock := clockwork.NewFakeClock()

	t.Run("zero value reports idle", func(t *testing.T) {
		var s Session

		snap := s.Snapshot(clock.Now())

		assert.Equal(t, StateIdle, snap.State)
	})

	t.Run("resolves live elapsed without mutating", func(t *testing.T) {
		var s Session
		require.NoError(t, s.Press(clock.Now()))
		clock.Advance(7 * time.Second)

		snap := s.Snapshot(clock.Now())

		assert.Equal(t, 7, snap.Elapsed)
		assert.Equal(t, 0, s.Elapsed)
	})
}
