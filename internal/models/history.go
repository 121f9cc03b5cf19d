package models

// TaskHistoryEntry is the display-oriented summary of a submission kept in
// the flow session's history. It is discarded when the session ends.
type TaskHistoryEntry struct {
	ID        int    `json:"id" example:"2"`
	TaskType  string `json:"taskType" example:"text_reading"`
	Title     string `json:"title" example:"Text Reading: iPhone X"`
	Duration  string `json:"duration" example:"15s"`
	Timestamp string `json:"timestamp" example:"2024-01-15T09:30:00"`
	Preview   string `json:"preview" example:"SIM-Free, Model A19211 6.5-inch Super Retina HD d..."`
}

// TaskHistoryResponse is the response for the session history view.
type TaskHistoryResponse struct {
	Items []TaskHistoryEntry `json:"items"`
}
