// Package noise runs the ambient noise check that gates entry to task
// selection.
package noise

import (
	"math/rand/v2"
	"sync"
)

const (
	// MinLevel is the lowest reading a RandomSource produces.
	MinLevel = 20
	// MaxLevel is the highest reading a RandomSource produces.
	MaxLevel = 60
)

// SampleSource supplies sound level readings.
type SampleSource interface {
	NextSample() int
}

// RandomSource simulates a microphone with uniform readings in
// [MinLevel, MaxLevel].
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource creates a RandomSource. A nil rng uses a randomly seeded
// generator.
func NewRandomSource(rng *rand.Rand) *RandomSource {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomSource{rng: rng}
}

// NextSample returns the next simulated reading.
func (s *RandomSource) NextSample() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MinLevel + s.rng.IntN(MaxLevel-MinLevel+1)
}

// SequenceSource replays a fixed sequence of readings, repeating the last
// one once the sequence is exhausted.
type SequenceSource struct {
	mu      sync.Mutex
	samples []int
	next    int
}

// NewSequenceSource creates a SequenceSource over samples.
func NewSequenceSource(samples ...int) *SequenceSource {
	return &SequenceSource{samples: samples}
}

// NextSample returns the next reading of the sequence.
func (s *SequenceSource) NextSample() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.samples) == 0 {
		return 0
	}
	if s.next >= len(s.samples) {
		return s.samples[len(s.samples)-1]
	}
	v := s.samples[s.next]
	s.next++
	return v
}

var (
	_ SampleSource = (*RandomSource)(nil)
	_ SampleSource = (*SequenceSource)(nil)
)
