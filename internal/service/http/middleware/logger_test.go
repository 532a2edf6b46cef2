package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *strings.Builder {
	t.Helper()
	buf := &strings.Builder{}
	old := logs.Logger
	logs.Logger = zerolog.New(buf)
	t.Cleanup(func() { logs.Logger = old })
	return buf
}

func TestRequestLoggerIncludesBatchID(t *testing.T) {
	buf := captureLogs(t)
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(RequestLogger())
	e.POST("/v1/mockups", func(c *gin.Context) {
		c.Set("batch_id", "batch-123")
		c.Status(200)
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest("POST", "/v1/mockups", nil))

	line := buf.String()
	require.Contains(t, line, `"batch_id":"batch-123"`)
	require.Contains(t, line, `"path":"/v1/mockups"`)
	require.Contains(t, line, `"status":200`)
}

func TestRequestLoggerWithoutBatchID(t *testing.T) {
	buf := captureLogs(t)
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(RequestLogger())
	e.GET("/v1/state", func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest("GET", "/v1/state", nil))

	require.NotContains(t, buf.String(), "batch_id")
	require.Contains(t, buf.String(), `"path":"/v1/state"`)
}
