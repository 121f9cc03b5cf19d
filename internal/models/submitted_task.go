package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskType identifies the kind of sample task a user completed.
type TaskType string

const (
	// TaskTypeTextReading is reading a product description aloud.
	TaskTypeTextReading TaskType = "text_reading"
	// TaskTypeImageDescription is describing an image via audio.
	TaskTypeImageDescription TaskType = "image_description"
	// TaskTypePhotoCapture is capturing a photo.
	TaskTypePhotoCapture TaskType = "photo_capture"
)

// TimestampLayout is the second-precision layout used for task timestamps.
const TimestampLayout = "2006-01-02T15:04:05"

// IsValid reports whether t is a known task type.
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeTextReading, TaskTypeImageDescription, TaskTypePhotoCapture:
		return true
	}
	return false
}

// SubmittedTask is a completed task submission. It is never modified after
// it has been appended to the task record store.
type SubmittedTask struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	SessionID       string             `json:"sessionId" bson:"sessionId" example:"5b8f1c8e-6a43-4a9e-9a55-0b8f2f3f7d11"`
	TaskType        TaskType           `json:"taskType" bson:"taskType" example:"text_reading"`
	Content         string             `json:"content" bson:"content" example:"SIM-Free, Model A19211 6.5-inch Super Retina HD display with OLED technology."`
	AudioReference  string             `json:"audioReference" bson:"audioReference" example:"audio/5b8f1c8e/audio_1700000000000.mp3"`
	AudioURL        string             `json:"audioUrl,omitempty" bson:"-"` // Pre-signed URL, not stored in DB
	DurationSeconds int                `json:"durationSeconds" bson:"durationSeconds" example:"15"`
	Timestamp       string             `json:"timestamp" bson:"timestamp" example:"2024-01-15T09:30:00"`
	ProductID       *int               `json:"productId,omitempty" bson:"productId,omitempty" example:"2"`
	ProductTitle    *string            `json:"productTitle,omitempty" bson:"productTitle,omitempty" example:"iPhone X"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// SubmittedTaskListResponse is the response for listing submitted tasks.
type SubmittedTaskListResponse struct {
	Items      []SubmittedTask `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}
