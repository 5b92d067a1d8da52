package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to
// manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// DecodeJSON decodes a recorded response body into a generic map.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// ErrorTitles returns the titles of a JSON:API error document.
func ErrorTitles(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var doc jsonapi.ErrorDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc), "body: %s", rec.Body.String())
	titles := make([]string, 0, len(doc.Errors))
	for _, e := range doc.Errors {
		titles = append(titles, e.Title)
	}
	return titles
}

// AssertErrorResponse checks the status code and the first error title of a
// JSON:API error response.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, expectedTitle string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, jsonapi.MediaType, rec.Header().Get("Content-Type"))

	titles := ErrorTitles(t, rec)
	require.NotEmpty(t, titles, "expected at least one error object")
	assert.Equal(t, expectedTitle, titles[0])
}
