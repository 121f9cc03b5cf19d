package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "humanness-tasks/internal/errors"
	"humanness-tasks/internal/models"
	"humanness-tasks/internal/recording"
	"humanness-tasks/internal/service"
	"humanness-tasks/internal/service/mocks"
	"humanness-tasks/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(m *mocks.MockSessionService, id string) *gin.Engine {
	handler := NewSessionHandler(m)

	router := gin.New()
	router.POST("/sessions", handler.CreateSession)

	s := router.Group("/session")
	if id != "" {
		s.Use(setSessionID(id))
	}
	s.GET("", handler.GetSession)
	s.DELETE("", handler.EndSession)
	s.POST("/advance", handler.Advance)
	s.POST("/back", handler.GoBack)
	s.GET("/history", handler.History)
	s.GET("/recording", handler.RecordingStatus)
	s.POST("/recording/start", handler.StartRecording)
	s.POST("/recording/stop", handler.StopRecording)
	s.POST("/recording/reset", handler.ResetRecording)
	s.POST("/submit", handler.Submit)
	return router
}

func viewAt(screen models.Screen) *session.View {
	return &session.View{ID: testSessionID, Screen: screen}
}

func TestSessionHandler_CreateSession(t *testing.T) {
	m := &mocks.MockSessionService{
		CreateSessionFunc: func(ctx context.Context) (*service.SessionTokenResponse, error) {
			return &service.SessionTokenResponse{Token: "token", ExpiresIn: 3600, Session: *viewAt(models.ScreenStart)}, nil
		},
	}

	w := performRequest(newSessionRouter(m, ""), http.MethodPost, "/sessions", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "token", data["token"])
	assert.Equal(t, "start", data["session"].(map[string]interface{})["screen"])
}

func TestSessionHandler_RequiresSession(t *testing.T) {
	router := newSessionRouter(&mocks.MockSessionService{}, "")

	routes := []struct{ method, path string }{
		{http.MethodGet, "/session"},
		{http.MethodDelete, "/session"},
		{http.MethodPost, "/session/advance"},
		{http.MethodPost, "/session/back"},
		{http.MethodGet, "/session/history"},
		{http.MethodGet, "/session/recording"},
		{http.MethodPost, "/session/recording/start"},
		{http.MethodPost, "/session/recording/stop"},
		{http.MethodPost, "/session/recording/reset"},
		{http.MethodPost, "/session/submit"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w := performRequest(router, r.method, r.path, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestSessionHandler_GetSession(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"found", nil, http.StatusOK},
		{"not found", apperrors.ErrSessionNotFound, http.StatusNotFound},
		{"store error", errors.New("redis down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mocks.MockSessionService{
				GetSessionFunc: func(ctx context.Context, id string) (*session.View, error) {
					assert.Equal(t, testSessionID, id)
					if tt.err != nil {
						return nil, tt.err
					}
					return viewAt(models.ScreenTaskSelection), nil
				},
			}

			w := performRequest(newSessionRouter(m, testSessionID), http.MethodGet, "/session", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSessionHandler_EndSession(t *testing.T) {
	called := false
	m := &mocks.MockSessionService{
		EndSessionFunc: func(ctx context.Context, id string) error {
			called = true
			return nil
		},
	}

	w := performRequest(newSessionRouter(m, testSessionID), http.MethodDelete, "/session", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, called)
}

func TestSessionHandler_Advance(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		err            error
		expectedStatus int
	}{
		{"successful advance", models.AdvanceRequest{Screen: models.ScreenNoiseCheck}, nil, http.StatusOK},
		{"invalid JSON body", "invalid json", nil, http.StatusBadRequest},
		{"missing screen", map[string]string{}, nil, http.StatusBadRequest},
		{"unknown screen", map[string]string{"screen": "checkout"}, nil, http.StatusBadRequest},
		{"invalid transition", models.AdvanceRequest{Screen: models.ScreenTextReading}, fmt.Errorf("%w: start -> text_reading", apperrors.ErrInvalidTransition), http.StatusConflict},
		{"noise test required", models.AdvanceRequest{Screen: models.ScreenTaskSelection}, apperrors.ErrNoiseTestRequired, http.StatusUnprocessableEntity},
		{"noise too high", models.AdvanceRequest{Screen: models.ScreenTaskSelection}, apperrors.ErrNoiseTooHigh, http.StatusUnprocessableEntity},
		{"catalog unavailable", models.AdvanceRequest{Screen: models.ScreenTextReading}, apperrors.ErrCatalogUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mocks.MockSessionService{
				AdvanceFunc: func(ctx context.Context, id string, screen models.Screen) (*session.View, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return viewAt(screen), nil
				},
			}

			w := performRequest(newSessionRouter(m, testSessionID), http.MethodPost, "/session/advance", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), decodeBody(t, w)["error"])
			}
		})
	}
}

func TestSessionHandler_GoBack(t *testing.T) {
	m := &mocks.MockSessionService{
		GoBackFunc: func(ctx context.Context, id string) (*session.View, error) {
			return nil, apperrors.ErrNoPreviousScreen
		},
	}

	w := performRequest(newSessionRouter(m, testSessionID), http.MethodPost, "/session/back", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSessionHandler_History(t *testing.T) {
	m := &mocks.MockSessionService{
		HistoryFunc: func(ctx context.Context, id string) (*models.TaskHistoryResponse, error) {
			return &models.TaskHistoryResponse{Items: []models.TaskHistoryEntry{
				{ID: 2, TaskType: "text_reading", Title: "Text Reading: iPhone X", Duration: "15s"},
			}}, nil
		},
	}

	w := performRequest(newSessionRouter(m, testSessionID), http.MethodGet, "/session/history", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["data"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Text Reading: iPhone X", items[0].(map[string]interface{})["title"])
}

func TestSessionHandler_StopRecording(t *testing.T) {
	tests := []struct {
		name           string
		rec            *recording.Session
		err            error
		expectedStatus int
		expectData     bool
	}{
		{
			name:           "valid recording",
			rec:            &recording.Session{State: recording.StateStopped, Elapsed: 15, Outcome: recording.OutcomeValid},
			expectedStatus: http.StatusOK,
			expectData:     true,
		},
		{
			name:           "too short returns the recording",
			rec:            &recording.Session{State: recording.StateStopped, Elapsed: 8, Outcome: recording.OutcomeTooShort, Message: apperrors.ErrRecordingTooShort.Error()},
			err:            apperrors.ErrRecordingTooShort,
			expectedStatus: http.StatusUnprocessableEntity,
			expectData:     true,
		},
		{
			name:           "too long returns the recording",
			rec:            &recording.Session{State: recording.StateStopped, Elapsed: 25, Outcome: recording.OutcomeTooLong, Message: apperrors.ErrRecordingTooLong.Error()},
			err:            apperrors.ErrRecordingTooLong,
			expectedStatus: http.StatusUnprocessableEntity,
			expectData:     true,
		},
		{
			name:           "not recording",
			err:            apperrors.ErrNotRecording,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "wrong screen",
			err:            apperrors.ErrWrongScreen,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mocks.MockSessionService{
				StopRecordingFunc: func(ctx context.Context, id string) (*recording.Session, error) {
					return tt.rec, tt.err
				},
			}

			w := performRequest(newSessionRouter(m, testSessionID), http.MethodPost, "/session/recording/stop", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeBody(t, w)
			if !tt.expectData {
				assert.Nil(t, resp["data"])
				return
			}
			data := resp["data"].(map[string]interface{})
			assert.Equal(t, float64(tt.rec.Elapsed), data["elapsed"])
			assert.Equal(t, string(tt.rec.Outcome), data["outcome"])
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), resp["error"])
			}
		})
	}
}

func TestSessionHandler_RecordingControls(t *testing.T) {
	m := &mocks.MockSessionService{
		StartRecordingFunc: func(ctx context.Context, id string) (*recording.Session, error) {
			return nil, apperrors.ErrAlreadyRecording
		},
		ResetRecordingFunc: func(ctx context.Context, id string) (*recording.Session, error) {
			return &recording.Session{State: recording.StateIdle}, nil
		},
		RecordingStatusFunc: func(ctx context.Context, id string) (*recording.Session, error) {
			return &recording.Session{State: recording.StateRecording, Elapsed: 7}, nil
		},
	}
	router := newSessionRouter(m, testSessionID)

	w := performRequest(router, http.MethodPost, "/session/recording/start", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(router, http.MethodPost, "/session/recording/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "idle", decodeBody(t, w)["data"].(map[string]interface{})["state"])

	w = performRequest(router, http.MethodGet, "/session/recording", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(7), decodeBody(t, w)["data"].(map[string]interface{})["elapsed"])
}

func TestSessionHandler_Submit(t *testing.T) {
	checks := models.QualityChecks{NoBackgroundNoise: true, NoReadingMistakes: true, NoMistakesInBetween: true}

	tests := []struct {
		name           string
		body           interface{}
		err            error
		expectedStatus int
	}{
		{"successful submit", models.SubmitTaskRequest{Checks: checks}, nil, http.StatusCreated},
		{"explicit task type", models.SubmitTaskRequest{TaskType: models.TaskTypeTextReading, Checks: checks}, nil, http.StatusCreated},
		{"unknown task type", map[string]interface{}{"taskType": "dancing"}, nil, http.StatusBadRequest},
		{"invalid JSON body", "invalid json", nil, http.StatusBadRequest},
		{"quality checks incomplete", models.SubmitTaskRequest{}, apperrors.ErrQualityChecksIncomplete, http.StatusUnprocessableEntity},
		{"recording not valid", models.SubmitTaskRequest{Checks: checks}, apperrors.ErrRecordingNotValid, http.StatusConflict},
		{"store error", models.SubmitTaskRequest{Checks: checks}, errors.New("mongo down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mocks.MockSessionService{
				SubmitFunc: func(ctx context.Context, id string, req *models.SubmitTaskRequest) (*models.SubmitTaskResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &models.SubmitTaskResponse{
						Task:      models.SubmittedTask{TaskType: models.TaskTypeTextReading, DurationSeconds: 15},
						History:   models.TaskHistoryEntry{Title: "Text Reading: iPhone X"},
						UploadURL: "https://s3/upload",
					}, nil
				},
			}

			w := performRequest(newSessionRouter(m, testSessionID), http.MethodPost, "/session/submit", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				data := decodeBody(t, w)["data"].(map[string]interface{})
				assert.Equal(t, "https://s3/upload", data["uploadUrl"])
			}
		})
	}
}
