package flow

import (
	"fmt"
	"unicode/utf8"

	"humanness-tasks/internal/models"
)

// PreviewLength is the number of content characters kept in a preview.
const PreviewLength = 50

// Preview returns the first PreviewLength characters of content followed by
// an ellipsis. The ellipsis is appended even when nothing was cut.
func Preview(content string) string {
	if utf8.RuneCountInString(content) <= PreviewLength {
		return content + "..."
	}
	return string([]rune(content)[:PreviewLength]) + "..."
}

// HistoryEntry derives the display entry for a submitted task.
func HistoryEntry(task *models.SubmittedTask) models.TaskHistoryEntry {
	entry := models.TaskHistoryEntry{
		TaskType:  string(task.TaskType),
		Title:     title(task),
		Duration:  fmt.Sprintf("%ds", task.DurationSeconds),
		Timestamp: task.Timestamp,
		Preview:   Preview(task.Content),
	}
	if task.ProductID != nil {
		entry.ID = *task.ProductID
	}
	return entry
}

func title(task *models.SubmittedTask) string {
	switch task.TaskType {
	case models.TaskTypeTextReading:
		name := ""
		if task.ProductTitle != nil {
			name = *task.ProductTitle
		}
		return "Text Reading: " + name
	case models.TaskTypeImageDescription:
		return "Image Description"
	case models.TaskTypePhotoCapture:
		return "Photo Capture"
	default:
		return string(task.TaskType)
	}
}
