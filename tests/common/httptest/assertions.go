//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorEnvelope mirrors the body written by httperr.AbortWithError.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AssertSuccessResponse checks the status and decodes the body into target
// when target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()
	require.Equalf(t, expectedStatus, w.Code, "body: %s", w.Body.String())
	if target == nil || w.Body.Len() == 0 {
		return
	}
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains
// wantMsg. An empty wantMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, wantMsg string) {
	t.Helper()
	assert.Equalf(t, expectedStatus, w.Code, "body: %s", w.Body.String())

	var env errorEnvelope
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	if wantMsg != "" {
		assert.Contains(t, env.Error.Message, wantMsg)
	}
}
