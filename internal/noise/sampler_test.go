package noise

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	apperrors "humanness-tasks/internal/errors"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instantConfig keeps the default sample count but removes all waiting.
func instantConfig() Config {
	cfg := DefaultConfig()
	cfg.SampleInterval = 0
	cfg.SettleDelay = 0
	return cfg
}

func TestClassify(t *testing.T) {
	for s := MinLevel; s <= MaxLevel; s++ {
		verdict, err := Classify(s)

		if s < 40 {
			assert.Equal(t, VerdictQuiet, verdict, "sample %d", s)
			assert.NoError(t, err)
		} else {
			assert.Equal(t, VerdictNoisy, verdict, "sample %d", s)
			assert.ErrorIs(t, err, apperrors.ErrNoiseTooHigh)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10, cfg.SampleCount)
	assert.Equal(t, 200*time.Millisecond, cfg.SampleInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.SettleDelay)
}

func TestSampler_Run(t *testing.T) {
	t.Run("sequence ending at 35 is quiet", func(t *testing.T) {
		source := NewSequenceSource(55, 58, 41, 60, 22, 30, 47, 52, 38, 35)
		sampler := NewSampler(source, clockwork.NewRealClock(), instantConfig())

		result, err := sampler.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 35, result.LastSample)
		assert.Equal(t, VerdictQuiet, result.Verdict)
		assert.True(t, result.Passed)
		assert.Equal(t, "Good to proceed", result.Message)
	})

	t.Run("sequence ending at 50 is noisy", func(t *testing.T) {
		source := NewSequenceSource(20, 21, 22, 23, 24, 25, 26, 27, 28, 50)
		sampler := NewSampler(source, clockwork.NewRealClock(), instantConfig())

		result, err := sampler.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 50, result.LastSample)
		assert.Equal(t, VerdictNoisy, result.Verdict)
		assert.False(t, result.Passed)
		assert.Equal(t, "Please move to a quieter place", result.Message)
	})

	t.Run("reports every reading in order", func(t *testing.T) {
		source := NewSequenceSource(31, 32, 33, 34, 35, 36, 37, 38, 39, 40)
		sampler := NewSampler(source, clockwork.NewRealClock(), instantConfig())

		var readings []Reading
		result, err := sampler.Run(context.Background(), func(r Reading) {
			readings = append(readings, r)
		})

		require.NoError(t, err)
		require.Len(t, readings, 10)
		for i, r := range readings {
			assert.Equal(t, i, r.Index)
			assert.Equal(t, 31+i, r.Level)
		}
		assert.Equal(t, []int{31, 32, 33, 34, 35, 36, 37, 38, 39, 40}, result.Samples)
	})

	t.Run("zero sample count falls back to default", func(t *testing.T) {
		sampler := NewSampler(NewSequenceSource(30), nil, Config{})

		assert.Equal(t, 10, sampler.cfg.SampleCount)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		sampler := NewSampler(NewSequenceSource(30), clockwork.NewFakeClock(), DefaultConfig())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := sampler.Run(ctx, nil)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("waits between readings and before classifying", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		sampler := NewSampler(NewSequenceSource(25), clock, DefaultConfig())

		done := make(chan *Result, 1)
		go func() {
			result, _ := sampler.Run(context.Background(), nil)
			done <- result
		}()

		for i := 0; i < 10; i++ {
			clock.BlockUntil(1)
			clock.Advance(200 * time.Millisecond)
		}

		clock.BlockUntil(1)
		select {
		case <-done:
			t.Fatal("classified before the settle delay elapsed")
		default:
		}
		clock.Advance(500 * time.Millisecond)

		select {
		case result := <-done:
			require.NotNil(t, result)
			assert.Len(t, result.Samples, 10)
			assert.Equal(t, VerdictQuiet, result.Verdict)
		case <-time.After(2 * time.Second):
			t.Fatal("sampler did not finish")
		}
	})
}

func TestRandomSource(t *testing.T) {
	source := NewRandomSource(rand.New(rand.NewPCG(1, 2)))

	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		s := source.NextSample()
		require.GreaterOrEqual(t, s, MinLevel)
		require.LessOrEqual(t, s, MaxLevel)
		seen[s] = true
	}

	assert.Len(t, seen, MaxLevel-MinLevel+1, "every level in range is produced")
}

func TestSequenceSource(t *testing.T) {
	t.Run("replays then repeats last", func(t *testing.T) {
		source := NewSequenceSource(1, 2, 3)

		got := []int{source.NextSample(), source.NextSample(), source.NextSample(), source.NextSample()}

		assert.Equal(t, []int{1, 2, 3, 3}, got)
	})

	t.Run("empty sequence yields zero", func(t *testing.T) {
		assert.Equal(t, 0, NewSequenceSource().NextSample())
	})
}
