// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"humanness-tasks/internal/models"
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/recording"
	"humanness-tasks/internal/service"
	"humanness-tasks/internal/session"
)

// MockSessionService is a mock implementation of SessionServicer.
type MockSessionService struct {
	CreateSessionFunc   func(ctx context.Context) (*service.SessionTokenResponse, error)
	GetSessionFunc      func(ctx context.Context, id string) (*session.View, error)
	EndSessionFunc      func(ctx context.Context, id string) error
	AdvanceFunc         func(ctx context.Context, id string, screen models.Screen) (*session.View, error)
	GoBackFunc          func(ctx context.Context, id string) (*session.View, error)
	RunNoiseTestFunc    func(ctx context.Context, id string, onSample func(noise.Reading)) (*noise.Result, error)
	StartRecordingFunc  func(ctx context.Context, id string) (*recording.Session, error)
	StopRecordingFunc   func(ctx context.Context, id string) (*recording.Session, error)
	ResetRecordingFunc  func(ctx context.Context, id string) (*recording.Session, error)
	RecordingStatusFunc func(ctx context.Context, id string) (*recording.Session, error)
	SubmitFunc          func(ctx context.Context, id string, req *models.SubmitTaskRequest) (*models.SubmitTaskResponse, error)
	HistoryFunc         func(ctx context.Context, id string) (*models.TaskHistoryResponse, error)
}

func (m *MockSessionService) CreateSession(ctx context.Context) (*service.SessionTokenResponse, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx)
	}
	return nil, nil
}

func (m *MockSessionService) GetSession(ctx context.Context, id string) (*session.View, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionService) EndSession(ctx context.Context, id string) error {
	if m.EndSessionFunc != nil {
		return m.EndSessionFunc(ctx, id)
	}
	return nil
}

func (m *MockSessionService) Advance(ctx context.Context, id string, screen models.Screen) (*session.View, error) {
	if m.AdvanceFunc != nil {
		return m.AdvanceFunc(ctx, id, screen)
	}
	return nil, nil
}

func (m *MockSessionService) GoBack(ctx context.Context, id string) (*session.View, error) {
	if m.GoBackFunc != nil {
		return m.GoBackFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionService) RunNoiseTest(ctx context.Context, id string, onSample func(noise.Reading)) (*noise.Result, error) {
	if m.RunNoiseTestFunc != nil {
		return m.RunNoiseTestFunc(ctx, id, onSample)
	}
	return nil, nil
}

func (m *MockSessionService) StartRecording(ctx context.Context, id string) (*recording.Session, error) {
	if m.StartRecordingFunc != nil {
		return m.StartRecordingFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionService) StopRecording(ctx context.Context, id string) (*recording.Session, error) {
	if m.StopRecordingFunc != nil {
		return m.StopRecordingFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionService) ResetRecording(ctx context.Context, id string) (*recording.Session, error) {
	if m.ResetRecordingFunc != nil {
		return m.ResetRecordingFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionService) RecordingStatus(ctx context.Context, id string) (*recording.Session, error) {
	if m.RecordingStatusFunc != nil {
		return m.RecordingStatusFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionService) Submit(ctx context.Context, id string, req *models.SubmitTaskRequest) (*models.SubmitTaskResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockSessionService) History(ctx context.Context, id string) (*models.TaskHistoryResponse, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, id)
	}
	return nil, nil
}

// MockTaskService is a mock implementation of TaskServicer.
type MockTaskService struct {
	ListTasksFunc func(ctx context.Context, page, limit int) (*models.SubmittedTaskListResponse, error)
}

func (m *MockTaskService) ListTasks(ctx context.Context, page, limit int) (*models.SubmittedTaskListResponse, error) {
	if m.ListTasksFunc != nil {
		return m.ListTasksFunc(ctx, page, limit)
	}
	return nil, nil
}

// MockCatalogService is a mock implementation of CatalogServicer.
type MockCatalogService struct {
	CatalogFunc func(ctx context.Context) (*models.ProductListResponse, error)
}

func (m *MockCatalogService) Catalog(ctx context.Context) (*models.ProductListResponse, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc(ctx)
	}
	return nil, nil
}

// Ensure mocks implement the service interfaces
var (
	_ service.SessionServicer = (*MockSessionService)(nil)
	_ service.TaskServicer    = (*MockTaskService)(nil)
	_ service.CatalogServicer = (*MockCatalogService)(nil)
)
