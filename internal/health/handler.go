// Package health exposes the liveness endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festhub/sportsfest-api/internal/database/database"
)

// Handler answers GET /health by pinging the database.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Response is the health endpoint body.
type Response struct {
	Status string `json:"status"`
}

// Check reports 200 "ok" while the database answers pings within 5s,
// 503 "unhealthy" otherwise.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok"})
}
