package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// Logger must emit through the shared logger sink, with the request
// fields the rest of the service logs alongside.
func TestLoggerWritesRequestFieldsToSharedSink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	orig := zlog.Logger
	zlog.Logger = zerolog.New(&buf)
	t.Cleanup(func() { zlog.Logger = orig })

	router := gin.New()
	router.Use(RequestID(), Logger())
	router.GET("/api/v1/submissions/stats", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/submissions/stats", nil)
	req.Header.Set(RequestIDHeader, "test-request-id")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	logLine := buf.String()
	assert.Contains(t, logLine, `"message":"HTTP Request"`)
	assert.Contains(t, logLine, `"method":"GET"`)
	assert.Contains(t, logLine, `"path":"/api/v1/submissions/stats"`)
	assert.Contains(t, logLine, `"status":200`)
	assert.Contains(t, logLine, `"request_id":"test-request-id"`)
	assert.Contains(t, logLine, `"latency_ms"`)
}
