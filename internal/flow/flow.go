// Package flow sequences the screens of a sample task session and collects
// the history entries submitted along the way.
package flow

import (
	"fmt"

	apperrors "humanness-tasks/internal/errors"
	"humanness-tasks/internal/models"
)

// transitions lists the screens reachable from each screen by Advance.
var transitions = map[models.Screen][]models.Screen{
	models.ScreenStart:      {models.ScreenNoiseCheck},
	models.ScreenNoiseCheck: {models.ScreenTaskSelection},
	models.ScreenTaskSelection: {
		models.ScreenTextReading,
		models.ScreenImageDescription,
		models.ScreenPhotoCapture,
		models.ScreenTaskHistory,
	},
	models.ScreenTextReading: {models.ScreenTaskSelection},
}

// CanAdvance reports whether to is reachable from from in one step.
func CanAdvance(from, to models.Screen) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Next returns the screens reachable from s.
func Next(s models.Screen) []models.Screen {
	next := transitions[s]
	out := make([]models.Screen, len(next))
	copy(out, next)
	return out
}

// Navigator holds the screen stack and history accumulator of one session.
// The zero value is positioned at the start screen.
type Navigator struct {
	Stack   []models.Screen           `json:"stack"`
	History []models.TaskHistoryEntry `json:"history"`
}

// New returns a Navigator at the start screen.
func New() Navigator {
	return Navigator{
		Stack:   []models.Screen{models.ScreenStart},
		History: []models.TaskHistoryEntry{},
	}
}

// Current returns the screen on top of the stack.
func (n *Navigator) Current() models.Screen {
	if len(n.Stack) == 0 {
		return models.ScreenStart
	}
	return n.Stack[len(n.Stack)-1]
}

// Advance pushes to onto the stack. A non-nil entry is appended to the
// history accumulator.
func (n *Navigator) Advance(to models.Screen, entry *models.TaskHistoryEntry) error {
	from := n.Current()
	if !CanAdvance(from, to) {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, from, to)
	}

	if len(n.Stack) == 0 {
		n.Stack = []models.Screen{models.ScreenStart}
	}
	n.Stack = append(n.Stack, to)
	if entry != nil {
		n.History = append(n.History, *entry)
	}
	return nil
}

// GoBack pops exactly one screen.
func (n *Navigator) GoBack() (models.Screen, error) {
	if len(n.Stack) <= 1 {
		return n.Current(), apperrors.ErrNoPreviousScreen
	}

	n.Stack = n.Stack[:len(n.Stack)-1]
	return n.Current(), nil
}

// Entries returns a copy of the history accumulator.
func (n *Navigator) Entries() []models.TaskHistoryEntry {
	out := make([]models.TaskHistoryEntry, len(n.History))
	copy(out, n.History)
	return out
}
