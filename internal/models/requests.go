package models

// AdvanceRequest is the request body for moving the flow to another screen.
type AdvanceRequest struct {
	Screen Screen `json:"screen" binding:"required,screen" example:"noise_check"`
}

// QualityChecks are the confirmations a user gives about a valid recording.
type QualityChecks struct {
	NoBackgroundNoise   bool `json:"noBackgroundNoise" example:"true"`
	NoReadingMistakes   bool `json:"noReadingMistakes" example:"true"`
	NoMistakesInBetween bool `json:"noMistakesInBetween" example:"true"`
}

// AllConfirmed reports whether every quality check is confirmed.
func (q QualityChecks) AllConfirmed() bool {
	return q.NoBackgroundNoise && q.NoReadingMistakes && q.NoMistakesInBetween
}

// SubmitTaskRequest is the request body for submitting a recorded task.
type SubmitTaskRequest struct {
	TaskType TaskType      `json:"taskType" binding:"omitempty,tasktype" example:"text_reading"`
	Checks   QualityChecks `json:"checks"`
}

// SubmitTaskResponse is the response for a successful submission.
type SubmitTaskResponse struct {
	Task      SubmittedTask    `json:"task"`
	History   TaskHistoryEntry `json:"history"`
	UploadURL string           `json:"uploadUrl,omitempty" example:"https://s3.amazonaws.com/bucket/audio/...?X-Amz-Algorithm=..."`
}
