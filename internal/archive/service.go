// Package archive writes durable copies of submitted tasks to object storage.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"humanness-tasks/internal/models"
	"humanness-tasks/internal/storage"
)

//go:generate mockgen -destination=mocks/mock_archiver.go -package=mocks humanness-tasks/internal/archive Archiver

// Archiver stores a durable copy of a submitted task.
type Archiver interface {
	Archive(ctx context.Context, task models.SubmittedTask) error
}

// Ensure Service implements Archiver
var _ Archiver = (*Service)(nil)

// Service archives tasks as JSON documents in object storage.
type Service struct {
	storage storage.Storage
}

// NewService creates an archive Service writing to s.
func NewService(s storage.Storage) *Service {
	return &Service{storage: s}
}

// Key returns the object key of a task's archive document.
func Key(task models.SubmittedTask) string {
	return fmt.Sprintf("archive/tasks/%s.json", task.ID.Hex())
}

// Archive writes task to archive/tasks/<id>.json.
func (s *Service) Archive(ctx context.Context, task models.SubmittedTask) error {
	if task.ID.IsZero() {
		return fmt.Errorf("archive task: missing id")
	}

	task.AudioURL = ""
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("archive task %s: %w", task.ID.Hex(), err)
	}

	if err := s.storage.PutObject(ctx, Key(task), bytes.NewReader(body), "application/json"); err != nil {
		return fmt.Errorf("archive task %s: %w", task.ID.Hex(), err)
	}
	return nil
}
