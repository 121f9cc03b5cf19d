// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"humanness-tasks/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== Product Fixtures =====

// NewProduct creates a catalog product with the given ID.
func NewProduct(id int) models.Product {
	return models.Product{
		ID:          id,
		Title:       fmt.Sprintf("Product %d", id),
		Description: fmt.Sprintf("Description of product %d with enough words to read aloud.", id),
	}
}

// ===== Submitted Task Fixtures =====

// SubmittedTaskBuilder provides fluent API for building test submissions.
type SubmittedTaskBuilder struct {
	task models.SubmittedTask
}

// NewSubmittedTask creates a new SubmittedTaskBuilder for a valid text
// reading submission.
func NewSubmittedTask() *SubmittedTaskBuilder {
	now := time.Now()
	sessionID := primitive.NewObjectID().Hex()
	product := NewProduct(1)

	return &SubmittedTaskBuilder{
		task: models.SubmittedTask{
			SessionID:       sessionID,
			TaskType:        models.TaskTypeTextReading,
			Content:         product.Description,
			AudioReference:  fmt.Sprintf("audio/%s/audio_%d.mp3", sessionID, now.UnixMilli()),
			DurationSeconds: 15,
			Timestamp:       now.Format(models.TimestampLayout),
			ProductID:       &product.ID,
			ProductTitle:    &product.Title,
		},
	}
}

func (b *SubmittedTaskBuilder) WithID(id primitive.ObjectID) *SubmittedTaskBuilder {
	b.task.ID = id
	return b
}

func (b *SubmittedTaskBuilder) WithSessionID(sessionID string) *SubmittedTaskBuilder {
	b.task.SessionID = sessionID
	return b
}

func (b *SubmittedTaskBuilder) WithTaskType(taskType models.TaskType) *SubmittedTaskBuilder {
	b.task.TaskType = taskType
	return b
}

func (b *SubmittedTaskBuilder) WithContent(content string) *SubmittedTaskBuilder {
	b.task.Content = content
	return b
}

func (b *SubmittedTaskBuilder) WithDuration(seconds int) *SubmittedTaskBuilder {
	b.task.DurationSeconds = seconds
	return b
}

func (b *SubmittedTaskBuilder) WithTimestamp(ts time.Time) *SubmittedTaskBuilder {
	b.task.Timestamp = ts.Format(models.TimestampLayout)
	return b
}

// WithProduct sets the product the task was read from.
func (b *SubmittedTaskBuilder) WithProduct(p models.Product) *SubmittedTaskBuilder {
	b.task.ProductID = &p.ID
	b.task.ProductTitle = &p.Title
	b.task.Content = p.Description
	return b
}

// WithoutProduct clears the product reference.
func (b *SubmittedTaskBuilder) WithoutProduct() *SubmittedTaskBuilder {
	b.task.ProductID = nil
	b.task.ProductTitle = nil
	return b
}

func (b *SubmittedTaskBuilder) Build() models.SubmittedTask {
	return b.task
}

func (b *SubmittedTaskBuilder) BuildPtr() *models.SubmittedTask {
	t := b.task
	return &t
}
