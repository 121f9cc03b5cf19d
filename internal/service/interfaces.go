// Package service contains business logic for the application.
package service

import (
	"context"

	"humanness-tasks/internal/models"
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/recording"
	"humanness-tasks/internal/session"
)

// SessionServicer defines the interface for flow session operations.
type SessionServicer interface {
	CreateSession(ctx context.Context) (*SessionTokenResponse, error)
	GetSession(ctx context.Context, id string) (*session.View, error)
	EndSession(ctx context.Context, id string) error

	// Navigation
	Advance(ctx context.Context, id string, screen models.Screen) (*session.View, error)
	GoBack(ctx context.Context, id string) (*session.View, error)

	// Noise check
	RunNoiseTest(ctx context.Context, id string, onSample func(noise.Reading)) (*noise.Result, error)

	// Text reading
	StartRecording(ctx context.Context, id string) (*recording.Session, error)
	StopRecording(ctx context.Context, id string) (*recording.Session, error)
	ResetRecording(ctx context.Context, id string) (*recording.Session, error)
	RecordingStatus(ctx context.Context, id string) (*recording.Session, error)
	Submit(ctx context.Context, id string, req *models.SubmitTaskRequest) (*models.SubmitTaskResponse, error)

	History(ctx context.Context, id string) (*models.TaskHistoryResponse, error)
}

// TaskServicer defines the interface for submitted task queries.
type TaskServicer interface {
	ListTasks(ctx context.Context, page, limit int) (*models.SubmittedTaskListResponse, error)
}

// CatalogServicer defines the interface for catalog queries.
type CatalogServicer interface {
	Catalog(ctx context.Context) (*models.ProductListResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ SessionServicer = (*SessionService)(nil)
	_ TaskServicer    = (*TaskService)(nil)
	_ CatalogServicer = (*CatalogService)(nil)
)
