// Package session holds the server-side state of one pass through the task
// flow and persists it between requests.
package session

import (
	"time"

	"humanness-tasks/internal/flow"
	"humanness-tasks/internal/models"
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/recording"
)

// NoiseStatus is the progress of the noise test on the noise check screen.
type NoiseStatus string

const (
	NoiseStatusIdle     NoiseStatus = "idle"
	NoiseStatusComplete NoiseStatus = "complete"
)

// NoiseCheck is the outcome of the most recent noise test.
type NoiseCheck struct {
	Status     NoiseStatus   `json:"status" example:"complete"`
	LastSample int           `json:"lastSample,omitempty" example:"35"`
	Verdict    noise.Verdict `json:"verdict,omitempty" example:"quiet"`
	Samples    []int         `json:"samples,omitempty"`
	Message    string        `json:"message,omitempty" example:"Good to proceed"`
}

// Passed reports whether the last completed test was quiet.
func (n NoiseCheck) Passed() bool {
	return n.Status == NoiseStatusComplete && n.Verdict == noise.VerdictQuiet
}

// ReadingTask is the product chosen for the current text reading task.
type ReadingTask struct {
	Product models.Product `json:"product"`
}

// FlowSession is the state of one user's pass through the flow.
type FlowSession struct {
	ID        string            `json:"id"`
	Navigator flow.Navigator    `json:"navigator"`
	Noise     NoiseCheck        `json:"noise"`
	Reading   *ReadingTask      `json:"reading,omitempty"`
	Recording recording.Session `json:"recording"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// New returns a session positioned at the start screen.
func New(id string, now time.Time) *FlowSession {
	return &FlowSession{
		ID:        id,
		Navigator: flow.New(),
		Noise:     NoiseCheck{Status: NoiseStatusIdle},
		Recording: recording.Session{State: recording.StateIdle},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Screen returns the screen the session is on.
func (s *FlowSession) Screen() models.Screen {
	return s.Navigator.Current()
}

// View is the client-facing rendering of a FlowSession.
type View struct {
	ID          string                    `json:"id" example:"5b8f1c8e-6a43-4a9e-9a55-0b8f2f3f7d11"`
	Screen      models.Screen             `json:"screen" example:"task_selection"`
	NextScreens []models.Screen           `json:"nextScreens"`
	CanGoBack   bool                      `json:"canGoBack" example:"true"`
	Noise       NoiseCheck                `json:"noise"`
	Reading     *ReadingTask              `json:"reading,omitempty"`
	Recording   recording.Session         `json:"recording"`
	History     []models.TaskHistoryEntry `json:"history"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

// View renders the session at now. The recording elapsed time is resolved
// against now while the button is held.
func (s *FlowSession) View(now time.Time) View {
	return View{
		ID:          s.ID,
		Screen:      s.Screen(),
		NextScreens: flow.Next(s.Screen()),
		CanGoBack:   len(s.Navigator.Stack) > 1,
		Noise:       s.Noise,
		Reading:     s.Reading,
		Recording:   s.Recording.Snapshot(now),
		History:     s.Navigator.Entries(),
		UpdatedAt:   s.UpdatedAt,
	}
}
