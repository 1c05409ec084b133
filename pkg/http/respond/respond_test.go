package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorEnvelopeShape(t *testing.T) {
	cases := []struct {
		name    string
		write   func(http.ResponseWriter)
		status  int
		message string
	}{
		{"bad request", BadRequest, http.StatusBadRequest, "bad request"},
		{"not found", NotFound, http.StatusNotFound, "resource not found"},
		{"unprocessable", Unprocessable, http.StatusUnprocessableEntity, "unprocessable"},
		{"internal", Internal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.status, body.Error)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestErrorEnvelopeAlwaysCarriesSuccessKey(t *testing.T) {
	// The success flag must be serialized even though it is false on every
	// error, so clients can branch on a single key across all statuses.
	rec := httptest.NewRecorder()
	Internal(rec)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	_, ok := raw["success"]
	assert.True(t, ok)
}

func TestJSONWritesPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]any{"success": true, "total": 6})

	assert.Equal(t, http.StatusOK, rec.Code)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, true, raw["success"])
	assert.Equal(t, float64(6), raw["total"])
}
