package ratelimit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/Prakul111/vibe-code-project/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, config *Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, err := NewMemory(config)
	require.NoError(t, err)

	router := gin.New()
	router.Use(l.Middleware())
	router.POST("/api/v1/projects", func(c *gin.Context) { c.Status(http.StatusCreated) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	return router
}

func do(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "203.0.113.7:1234"
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_LimitsAfterRate(t *testing.T) {
	router := newRouter(t, &Config{Enabled: true, Rate: "2-M", Prefix: "test"})

	assert.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/v1/projects").Code)
	assert.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/v1/projects").Code)

	w := do(router, http.MethodPost, "/api/v1/projects")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeTooManyRequests, resp.Error)
}

func TestMiddleware_SetsRateHeaders(t *testing.T) {
	router := newRouter(t, &Config{Enabled: true, Rate: "5-M"})

	w := do(router, http.MethodPost, "/api/v1/projects")

	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
}

func TestMiddleware_ExemptAndDisabled(t *testing.T) {
	router := newRouter(t, &Config{Enabled: true, Rate: "1-M", ExemptPaths: []string{"/health"}})
	for range 3 {
		assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health").Code)
	}

	router = newRouter(t, &Config{Enabled: false, Rate: "1-M"})
	for range 3 {
		assert.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/v1/projects").Code)
	}
}

func TestNew_InvalidRate(t *testing.T) {
	_, err := NewMemory(&Config{Rate: "lots"})
	assert.Error(t, err)
}

func TestConfig_IsExemptPath(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.IsExemptPath("/health"))
	assert.False(t, cfg.IsExemptPath("/healthcheck"))
	assert.False(t, cfg.IsExemptPath("/api/v1/projects"))
}
