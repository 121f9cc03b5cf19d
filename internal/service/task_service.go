package service

import (
	"context"
	"log"
	"time"

	"humanness-tasks/internal/models"
	"humanness-tasks/internal/repository"
	"humanness-tasks/internal/storage"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// TaskService handles read access to submitted tasks.
type TaskService struct {
	records       repository.TaskRecordStore
	storage       storage.Storage
	presignExpiry time.Duration
}

// NewTaskService creates a new TaskService.
func NewTaskService(records repository.TaskRecordStore, s storage.Storage, presignExpiry time.Duration) *TaskService {
	return &TaskService{
		records:       records,
		storage:       s,
		presignExpiry: presignExpiry,
	}
}

// ListTasks returns a page of submitted tasks in submission order with
// pre-signed audio URLs.
func (s *TaskService) ListTasks(ctx context.Context, page, limit int) (*models.SubmittedTaskListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	tasks, total, err := s.records.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].AudioReference == "" {
			continue
		}
		url, err := s.storage.GetPresignedURL(ctx, tasks[i].AudioReference, s.presignExpiry)
		if err != nil {
			log.Printf("Failed to presign audio for task %s: %v", tasks[i].ID.Hex(), err)
			continue
		}
		tasks[i].AudioURL = url
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &models.SubmittedTaskListResponse{
		Items: tasks,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}
