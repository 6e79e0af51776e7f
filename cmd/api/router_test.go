package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"blogform-backend/pkg/container"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, err := container.NewContainer()
	require.NoError(t, err)

	return SetupRouter(c)
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestServesBlogFormPage(t *testing.T) {
	router := newTestServer(t)

	w := get(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	// the page must expose every element the form controller binds to
	for _, id := range []string{"blogForm", "blogTitle", "authorName", "email", "blogContent", "category", "terms"} {
		assert.Contains(t, body, `id="`+id+`"`)
	}

	// native constraints must stay active: novalidate is a boolean
	// attribute, any occurrence (even ="false") would turn them off
	assert.NotContains(t, body, "novalidate")
	assert.Contains(t, body, `type="email"`)
	assert.Contains(t, body, "required")
}

func TestServesAssets(t *testing.T) {
	router := newTestServer(t)

	js := get(router, "/app.js")
	assert.Equal(t, http.StatusOK, js.Code)
	assert.Contains(t, js.Header().Get("Content-Type"), "javascript")
	assert.Contains(t, js.Body.String(), "preventDefault")
	// the page must surface server-side rejections, not just log them
	assert.Contains(t, js.Body.String(), "!res.ok")

	css := get(router, "/style.css")
	assert.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Header().Get("Content-Type"), "text/css")
}

func TestHealthCheck(t *testing.T) {
	router := newTestServer(t)

	w := get(router, "/health")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(router, "/api/v1/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := newTestServer(t)

	w := get(router, "/api/v1/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/submissions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
