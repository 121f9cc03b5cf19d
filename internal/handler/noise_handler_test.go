package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "humanness-tasks/internal/errors"
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newNoiseRouter(m *mocks.MockSessionService) *gin.Engine {
	handler := NewNoiseHandler(m)

	router := gin.New()
	router.POST("/session/noise-test", setSessionID(testSessionID), handler.RunNoiseTest)
	router.GET("/session/noise-test/stream", setSessionID(testSessionID), handler.StreamNoiseTest)
	return router
}

func TestNoiseHandler_RunNoiseTest(t *testing.T) {
	tests := []struct {
		name           string
		result         *noise.Result
		err            error
		expectedStatus int
	}{
		{
			name:           "quiet",
			result:         &noise.Result{Samples: []int{45, 35}, LastSample: 35, Verdict: noise.VerdictQuiet, Passed: true, Message: "Good to proceed"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "noisy returns the result",
			result:         &noise.Result{Samples: []int{30, 50}, LastSample: 50, Verdict: noise.VerdictNoisy, Message: apperrors.ErrNoiseTooHigh.Error()},
			err:            apperrors.ErrNoiseTooHigh,
			expectedStatus: http.StatusUnprocessableEntity,
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
				RunNoiseTestFunc: func(ctx context.Context, id string, onSample func(noise.Reading)) (*noise.Result, error) {
					return tt.result, tt.err
				},
			}

			w := performRequest(newNoiseRouter(m), http.MethodPost, "/session/noise-test", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeBody(t, w)
			if tt.result != nil {
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, float64(tt.result.LastSample), data["lastSample"])
				assert.Equal(t, tt.result.Message, data["message"])
			}
		})
	}
}

func TestNoiseHandler_StreamNoiseTest(t *testing.T) {
	m := &mocks.MockSessionService{
		RunNoiseTestFunc: func(ctx context.Context, id string, onSample func(noise.Reading)) (*noise.Result, error) {
			for i, level := range []int{52, 41, 35} {
				onSample(noise.Reading{Index: i, Level: level})
			}
			return &noise.Result{Samples: []int{52, 41, 35}, LastSample: 35, Verdict: noise.VerdictQuiet, Passed: true, Message: "Good to proceed"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/session/noise-test/stream", nil)
	w := httptest.NewRecorder()
	newNoiseRouter(m).ServeHTTP(w, req)

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, strings.Count(body, "event:sample"))
	assert.Equal(t, 1, strings.Count(body, "event:result"))
	assert.Less(t, strings.LastIndex(body, "event:sample"), strings.Index(body, "event:result"))
	assert.Contains(t, body, `"lastSample":35`)
}

func TestNoiseHandler_StreamNoiseTestError(t *testing.T) {
	m := &mocks.MockSessionService{
		RunNoiseTestFunc: func(ctx context.Context, id string, onSample func(noise.Reading)) (*noise.Result, error) {
			return nil, apperrors.ErrWrongScreen
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/session/noise-test/stream", nil)
	w := httptest.NewRecorder()
	newNoiseRouter(m).ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, "event:error")
	assert.Contains(t, body, apperrors.ErrWrongScreen.Error())
	assert.NotContains(t, body, "event:result")
}
