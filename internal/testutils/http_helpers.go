package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/phrazzld/haengsi/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// ReadBody reads the whole response body as a string.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return string(body)
}

// AssertErrorResponse checks that a JSON response carries the expected status
// code, an error message containing expectedErrorMsgPart and a trace ID.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	body := ReadBody(t, resp)

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp),
		"Failed to unmarshal error response: %s", body)

	assert.Contains(t, errResp.Error, expectedErrorMsgPart,
		"Error message should contain '%s' but got '%s'", expectedErrorMsgPart, errResp.Error)
	assert.NotEmpty(t, errResp.TraceID, "Error response should carry a trace ID")
}

// ExecuteFormRequest submits word to the form endpoint at POST /.
// The response body is closed automatically when the test ends.
func ExecuteFormRequest(t *testing.T, server *httptest.Server, word string) *http.Response {
	t.Helper()

	resp, err := server.Client().PostForm(server.URL+"/", url.Values{"word": {word}})
	require.NoError(t, err, "Failed to submit form")
	CleanupResponseBody(t, resp)
	return resp
}

// ExecuteJSONRequest sends body as JSON to method and path.
// The response body is closed automatically when the test ends.
func ExecuteJSONRequest(
	t *testing.T,
	server *httptest.Server,
	method, path, body string,
) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	require.NoError(t, err, "Failed to create request")
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	CleanupResponseBody(t, resp)
	return resp
}
