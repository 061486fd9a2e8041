package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestNotFound_UsesResourceName(t *testing.T) {
	c, w := newContext()

	NotFound(c, "Project")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeNotFound, resp.Error)
	assert.Equal(t, "Project not found", resp.Message)
}

func TestNotFound_DefaultMessage(t *testing.T) {
	c, w := newContext()

	NotFound(c, "")

	assert.Equal(t, "resource not found", decode(t, w).Message)
}

func TestValidationError_KeepsDetails(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	c, w := newContext()

	ValidationError(c, fmt.Errorf("value: must be at most 10000 characters"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeValidationError, resp.Error)
	assert.Equal(t, "value: must be at most 10000 characters", resp.Details)
}

func TestInternalError_SanitizesInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	c, w := newContext()

	InternalError(c, "failed to list projects", &pgconn.PgError{Code: "08006", Message: "connection failure"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeServerError, resp.Error)
	assert.Equal(t, "failed to list projects", resp.Message)
	assert.Equal(t, "database operation failed", resp.Details)
}

func TestInternalError_ExposesDetailsInDevelopment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	c, w := newContext()

	InternalError(c, "", fmt.Errorf("Database connection error"))

	resp := decode(t, w)
	assert.Equal(t, "an error occurred", resp.Message)
	assert.Equal(t, "Database connection error", resp.Details)
}

func TestTooManyRequests(t *testing.T) {
	c, w := newContext()

	TooManyRequests(c, "")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, CodeTooManyRequests, decode(t, w).Error)
}

func TestClassifyError(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	tests := []struct {
		name     string
		err      error
		category string
	}{
		{"pg error", &pgconn.PgError{Code: "23503"}, CategoryDatabase},
		{"no rows", fmt.Errorf("get project: %w", pgx.ErrNoRows), CategoryNotFound},
		{"timeout text", fmt.Errorf("i/o timeout"), CategoryTimeout},
		{"dial", fmt.Errorf("dial tcp 127.0.0.1:5432"), CategoryNetwork},
		{"unknown", fmt.Errorf("boom"), CategoryUnknown},
		{"nil", nil, CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, classifyError(tt.err).category)
		})
	}
}
