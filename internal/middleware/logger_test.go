package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func loggerRouter(logger *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(logger))
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/client-error", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
	})
	r.GET("/server-error", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	return r
}

func TestLogger_SeverityFollowsStatus(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		expectedLevel zapcore.Level
	}{
		{"2xx logs info", "/ok", zap.InfoLevel},
		{"4xx logs warn", "/client-error", zap.WarnLevel},
		{"5xx logs error", "/server-error", zap.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			router := loggerRouter(zap.New(core).Sugar())

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, "HTTP request", entries[0].Message)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)
		})
	}
}

func TestLogger_RequestFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := loggerRouter(zap.New(core).Sugar())

	req := httptest.NewRequest(http.MethodGet, "/ok?category=racquet", nil)
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "category=racquet", fields["query"])
	assert.Equal(t, "test-agent", fields["user_agent"])
	assert.Contains(t, fields, "latency_ms")
	assert.Contains(t, fields, "size")
}
