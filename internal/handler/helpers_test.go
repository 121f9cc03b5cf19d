package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"humanness-tasks/internal/validator"
	"humanness-tasks/test/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSessionID = "5b8f1c8e-6a43-4a9e-9a55-0b8f2f3f7d11"

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// setSessionID is a helper middleware to set the session ID in context
func setSessionID(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		testutil.SetSessionID(c, id)
		c.Next()
	}
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		_ = json.NewEncoder(&buf).Encode(v)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
