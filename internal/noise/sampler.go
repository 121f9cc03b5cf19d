package noise

import (
	"context"
	"time"

	apperrors "humanness-tasks/internal/errors"

	"github.com/jonboulle/clockwork"
)

// QuietThreshold is the level at and above which a room is too noisy.
const QuietThreshold = 40

// Verdict is the classification of a noise test.
type Verdict string

const (
	VerdictQuiet Verdict = "quiet"
	VerdictNoisy Verdict = "noisy"
)

// Classify returns the verdict for the final reading of a test. A noisy
// verdict carries ErrNoiseTooHigh as an advisory.
func Classify(sample int) (Verdict, error) {
	if sample < QuietThreshold {
		return VerdictQuiet, nil
	}
	return VerdictNoisy, apperrors.ErrNoiseTooHigh
}

// Config controls the shape of a noise test.
type Config struct {
	SampleCount    int
	SampleInterval time.Duration
	SettleDelay    time.Duration
}

// DefaultConfig is ten readings 200ms apart followed by a 500ms settle.
func DefaultConfig() Config {
	return Config{
		SampleCount:    10,
		SampleInterval: 200 * time.Millisecond,
		SettleDelay:    500 * time.Millisecond,
	}
}

// Reading is one sample taken during a test.
type Reading struct {
	Index int `json:"index" example:"3"`
	Level int `json:"level" example:"34"`
}

// Result is the outcome of a completed noise test.
type Result struct {
	Samples    []int   `json:"samples"`
	LastSample int     `json:"lastSample" example:"35"`
	Verdict    Verdict `json:"verdict" example:"quiet"`
	Passed     bool    `json:"passed" example:"true"`
	Message    string  `json:"message" example:"Good to proceed"`
}

// Sampler takes timed readings from a SampleSource.
type Sampler struct {
	source SampleSource
	clock  clockwork.Clock
	cfg    Config
}

// NewSampler creates a Sampler. A zero SampleCount falls back to the default.
func NewSampler(source SampleSource, clock clockwork.Clock, cfg Config) *Sampler {
	if cfg.SampleCount <= 0 {
		cfg.SampleCount = DefaultConfig().SampleCount
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Sampler{
		source: source,
		clock:  clock,
		cfg:    cfg,
	}
}

// Run performs one test. onSample, when non-nil, receives every reading in
// order; only the last reading decides the verdict. Run stops early with the
// context's error if ctx is cancelled.
func (s *Sampler) Run(ctx context.Context, onSample func(Reading)) (*Result, error) {
	samples := make([]int, 0, s.cfg.SampleCount)

	for i := 0; i < s.cfg.SampleCount; i++ {
		if err := s.wait(ctx, s.cfg.SampleInterval); err != nil {
			return nil, err
		}

		level := s.source.NextSample()
		samples = append(samples, level)
		if onSample != nil {
			onSample(Reading{Index: i, Level: level})
		}
	}

	if err := s.wait(ctx, s.cfg.SettleDelay); err != nil {
		return nil, err
	}

	last := samples[len(samples)-1]
	verdict, advisory := Classify(last)

	result := &Result{
		Samples:    samples,
		LastSample: last,
		Verdict:    verdict,
		Passed:     advisory == nil,
		Message:    "Good to proceed",
	}
	if advisory != nil {
		result.Message = advisory.Error()
	}
	return result, nil
}

func (s *Sampler) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(d):
		return nil
	}
}
