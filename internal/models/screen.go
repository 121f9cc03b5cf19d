package models

// Screen is a named step of the sample task flow.
type Screen string

const (
	ScreenStart            Screen = "start"
	ScreenNoiseCheck       Screen = "noise_check"
	ScreenTaskSelection    Screen = "task_selection"
	ScreenTextReading      Screen = "text_reading"
	ScreenImageDescription Screen = "image_description"
	ScreenPhotoCapture     Screen = "photo_capture"
	ScreenTaskHistory      Screen = "task_history"
)

// Screens lists every screen of the flow.
var Screens = []Screen{
	ScreenStart,
	ScreenNoiseCheck,
	ScreenTaskSelection,
	ScreenTextReading,
	ScreenImageDescription,
	ScreenPhotoCapture,
	ScreenTaskHistory,
}

// IsValid reports whether s names a known screen.
func (s Screen) IsValid() bool {
	for _, known := range Screens {
		if s == known {
			return true
		}
	}
	return false
}
