//go:build api

package testserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"humanness-tasks/internal/models"
	"humanness-tasks/pkg/response"
	"humanness-tasks/test/testutil"

	"github.com/stretchr/testify/require"
)

// SessionHelper drives a session through the task flow over HTTP.
type SessionHelper struct {
	server *TestServer
}

// NewSessionHelper creates a new session helper.
func NewSessionHelper(server *TestServer) *SessionHelper {
	return &SessionHelper{server: server}
}

// CreateSession starts a new session and returns its token and initial view.
func (sh *SessionHelper) CreateSession(t *testing.T) (token string, session map[string]interface{}) {
	t.Helper()

	w := testutil.MakeRequest(t, sh.server.Router, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, "create session should return 201, got: %s", w.Body.String())

	data := ResponseData(t, w)
	token, ok := data["token"].(string)
	require.True(t, ok, "token should be a string")

	session, ok = data["session"].(map[string]interface{})
	require.True(t, ok, "session should be a map")

	return token, session
}

// Advance moves the session to screen and returns the new view.
func (sh *SessionHelper) Advance(t *testing.T, token string, screen models.Screen) map[string]interface{} {
	t.Helper()

	req := models.AdvanceRequest{Screen: screen}
	w := testutil.MakeAuthRequest(t, sh.server.Router, http.MethodPost, "/api/v1/session/advance", token, req)
	require.Equal(t, http.StatusOK, w.Code, "advance to %s should return 200, got: %s", screen, w.Body.String())

	return ResponseData(t, w)
}

// PassNoiseCheck runs a quiet noise test and lands on task selection.
func (sh *SessionHelper) PassNoiseCheck(t *testing.T, token string) {
	t.Helper()

	sh.server.SetNoise(45, 38, 30)
	sh.Advance(t, token, models.ScreenNoiseCheck)

	w := testutil.MakeAuthRequest(t, sh.server.Router, http.MethodPost, "/api/v1/session/noise-test", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "noise test should pass, got: %s", w.Body.String())

	sh.Advance(t, token, models.ScreenTaskSelection)
}

// ToTextReading creates a session and walks it to the text reading screen.
func (sh *SessionHelper) ToTextReading(t *testing.T) (token string, view map[string]interface{}) {
	t.Helper()

	token, _ = sh.CreateSession(t)
	sh.PassNoiseCheck(t, token)
	view = sh.Advance(t, token, models.ScreenTextReading)

	return token, view
}

// Record presses, holds for d on the fake clock and releases.
func (sh *SessionHelper) Record(t *testing.T, token string, d time.Duration) *httptest.ResponseRecorder {
	t.Helper()

	w := testutil.MakeAuthRequest(t, sh.server.Router, http.MethodPost, "/api/v1/session/recording/start", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "start recording should return 200, got: %s", w.Body.String())

	sh.server.Clock.Advance(d)

	return testutil.MakeAuthRequest(t, sh.server.Router, http.MethodPost, "/api/v1/session/recording/stop", token, nil)
}

// Submit submits the current recording with every quality check confirmed.
func (sh *SessionHelper) Submit(t *testing.T, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := models.SubmitTaskRequest{
		TaskType: models.TaskTypeTextReading,
		Checks: models.QualityChecks{
			NoBackgroundNoise:   true,
			NoReadingMistakes:   true,
			NoMistakesInBetween: true,
		},
	}
	return testutil.MakeAuthRequest(t, sh.server.Router, http.MethodPost, "/api/v1/session/submit", token, req)
}

// ResponseData parses a success envelope and returns its data object.
func ResponseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "response should be successful: %s", w.Body.String())

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// AssertErrorResponse asserts the response is an error envelope with the
// expected status and message.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) response.Response {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.False(t, resp.Success, "response should not be successful")
	require.Equal(t, expectedMessage, resp.Error)

	return resp
}
