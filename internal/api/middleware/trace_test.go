package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobsearch-api/internal/api/shared"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
)

func TestTraceMiddleware(t *testing.T) {
	buf, log := logger.NewTestLogger(t)

	var seenTrace string
	handler := chimw.RequestID(NewTraceMiddleware(log)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			seenTrace = shared.GetTraceID(r.Context())
			logger.FromContextOrDefault(r.Context(), nil).Info("inside handler")
			w.WriteHeader(http.StatusTeapot)
		})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, seenTrace)
	assert.Equal(t, seenTrace, w.Header().Get(TraceHeader))
	assert.Equal(t, http.StatusTeapot, w.Code)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	var handlerEntry, completed map[string]any
	for _, e := range entries {
		switch e["msg"] {
		case "inside handler":
			handlerEntry = e
		case "request completed":
			completed = e
		}
	}
	require.NotNil(t, handlerEntry)
	assert.Equal(t, seenTrace, handlerEntry["trace_id"])
	assert.NotEmpty(t, handlerEntry["request_id"])
	require.NotNil(t, completed)
	assert.Equal(t, float64(http.StatusTeapot), completed["status"])
}
