package flow

import (
	"strings"
	"testing"

	apperrors "humanness-tasks/internal/errors"
	"humanness-tasks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n := New()

	assert.Equal(t, models.ScreenStart, n.Current())
	assert.Empty(t, n.History)
	assert.NotNil(t, n.History)
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		from     models.Screen
		to       models.Screen
		expected bool
	}{
		{models.ScreenStart, models.ScreenNoiseCheck, true},
		{models.ScreenStart, models.ScreenTaskSelection, false},
		{models.ScreenNoiseCheck, models.ScreenTaskSelection, true},
		{models.ScreenNoiseCheck, models.ScreenTextReading, false},
		{models.ScreenTaskSelection, models.ScreenTextReading, true},
		{models.ScreenTaskSelection, models.ScreenImageDescription, true},
		{models.ScreenTaskSelection, models.ScreenPhotoCapture, true},
		{models.ScreenTaskSelection, models.ScreenTaskHistory, true},
		{models.ScreenTaskSelection, models.ScreenStart, false},
		{models.ScreenTextReading, models.ScreenTaskSelection, true},
		{models.ScreenTextReading, models.ScreenTaskHistory, false},
		{models.ScreenTaskHistory, models.ScreenTaskSelection, false},
		{models.ScreenImageDescription, models.ScreenTaskSelection, false},
		{models.ScreenPhotoCapture, models.ScreenTaskSelection, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.expected, CanAdvance(tt.from, tt.to))
		})
	}
}

func TestNext_ReturnsCopy(t *testing.T) {
	next := Next(models.ScreenTaskSelection)
	next[0] = models.ScreenStart

	assert.Equal(t, models.ScreenTextReading, Next(models.ScreenTaskSelection)[0])
}

func TestNavigator_Advance(t *testing.T) {
	t.Run("walks the full session", func(t *testing.T) {
		n := New()

		require.NoError(t, n.Advance(models.ScreenNoiseCheck, nil))
		require.NoError(t, n.Advance(models.ScreenTaskSelection, nil))
		require.NoError(t, n.Advance(models.ScreenTextReading, nil))
		require.NoError(t, n.Advance(models.ScreenTaskSelection, &models.TaskHistoryEntry{ID: 3, Title: "Text Reading: Samsung Universe 9"}))
		require.NoError(t, n.Advance(models.ScreenTaskHistory, nil))

		assert.Equal(t, models.ScreenTaskHistory, n.Current())
		require.Len(t, n.History, 1)
		assert.Equal(t, 3, n.History[0].ID)
		assert.Equal(t, []models.Screen{
			models.ScreenStart,
			models.ScreenNoiseCheck,
			models.ScreenTaskSelection,
			models.ScreenTextReading,
			models.ScreenTaskSelection,
			models.ScreenTaskHistory,
		}, n.Stack)
	})

	t.Run("rejects disallowed transition", func(t *testing.T) {
		n := New()

		err := n.Advance(models.ScreenTextReading, nil)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		assert.Equal(t, models.ScreenStart, n.Current())
	})

	t.Run("rejected transition does not record payload", func(t *testing.T) {
		n := New()

		err := n.Advance(models.ScreenTaskSelection, &models.TaskHistoryEntry{ID: 1})

		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		assert.Empty(t, n.History)
	})

	t.Run("zero value behaves like start", func(t *testing.T) {
		var n Navigator

		require.NoError(t, n.Advance(models.ScreenNoiseCheck, nil))

		assert.Equal(t, []models.Screen{models.ScreenStart, models.ScreenNoiseCheck}, n.Stack)
	})
}

func TestNavigator_GoBack(t *testing.T) {
	t.Run("pops exactly one step", func(t *testing.T) {
		n := New()
		require.NoError(t, n.Advance(models.ScreenNoiseCheck, nil))
		require.NoError(t, n.Advance(models.ScreenTaskSelection, nil))

		screen, err := n.GoBack()

		require.NoError(t, err)
		assert.Equal(t, models.ScreenNoiseCheck, screen)
		assert.Equal(t, models.ScreenNoiseCheck, n.Current())
	})

	t.Run("keeps history when going back", func(t *testing.T) {
		n := New()
		require.NoError(t, n.Advance(models.ScreenNoiseCheck, nil))
		require.NoError(t, n.Advance(models.ScreenTaskSelection, nil))
		require.NoError(t, n.Advance(models.ScreenTextReading, nil))
		require.NoError(t, n.Advance(models.ScreenTaskSelection, &models.TaskHistoryEntry{ID: 1}))

		_, err := n.GoBack()

		require.NoError(t, err)
		assert.Len(t, n.History, 1)
	})

	t.Run("fails at the root", func(t *testing.T) {
		n := New()

		screen, err := n.GoBack()

		assert.ErrorIs(t, err, apperrors.ErrNoPreviousScreen)
		assert.Equal(t, models.ScreenStart, screen)
	})
}

func TestNavigator_Entries(t *testing.T) {
	n := New()
	n.History = append(n.History, models.TaskHistoryEntry{ID: 1})

	entries := n.Entries()
	entries[0].ID = 99

	assert.Equal(t, 1, n.History[0].ID)
}

func TestPreview(t *testing.T) {
	t.Run("truncates long content to 50 characters", func(t *testing.T) {
		content := "SIM-Free, Model A19211 6.5-inch Super Retina HD display with OLED technology."

		preview := Preview(content)

		assert.Equal(t, "SIM-Free, Model A19211 6.5-inch Super Retina HD di...", preview)
		assert.Equal(t, 53, len(preview))
	})

	t.Run("appends ellipsis to short content", func(t *testing.T) {
		assert.Equal(t, "OPPO F19 is officially announced on April 2021....", Preview("OPPO F19 is officially announced on April 2021."))
	})

	t.Run("exactly 50 characters", func(t *testing.T) {
		content := strings.Repeat("a", 50)

		assert.Equal(t, content+"...", Preview(content))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		content := strings.Repeat("é", 60)

		preview := Preview(content)

		assert.Equal(t, strings.Repeat("é", 50)+"...", preview)
	})

	t.Run("empty content", func(t *testing.T) {
		assert.Equal(t, "...", Preview(""))
	})
}

func TestHistoryEntry(t *testing.T) {
	productID := 2
	productTitle := "iPhone X"
	task := &models.SubmittedTask{
		TaskType:        models.TaskTypeTextReading,
		Content:         "SIM-Free, Model A19211 6.5-inch Super Retina HD display with OLED technology.",
		DurationSeconds: 15,
		Timestamp:       "2024-01-15T09:30:00",
		ProductID:       &productID,
		ProductTitle:    &productTitle,
	}

	entry := HistoryEntry(task)

	assert.Equal(t, 2, entry.ID)
	assert.Equal(t, "text_reading", entry.TaskType)
	assert.Equal(t, "Text Reading: iPhone X", entry.Title)
	assert.Equal(t, "15s", entry.Duration)
	assert.Equal(t, "2024-01-15T09:30:00", entry.Timestamp)
	assert.Equal(t, "SIM-Free, Model A19211 6.5-inch Super Retina HD di...", entry.Preview)
}
