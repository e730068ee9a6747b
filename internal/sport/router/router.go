// Package router provides sport module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festhub/sportsfest-api/internal/identity"
	"github.com/festhub/sportsfest-api/internal/sport/handler"
	"github.com/festhub/sportsfest-api/internal/sport/repository"
	"github.com/festhub/sportsfest-api/internal/sport/service"
)

// RegisterRoutes registers sport module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth identity.Authorizer) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/api/sports", h.ListSports)
	r.GET("/api/sports/:id", h.GetSport)

	admin := r.Group("/api/sports", identity.Required(), identity.RequireAdmin(auth))
	admin.POST("", h.CreateSport)
	admin.PATCH("/:id", h.UpdateSport)
	admin.POST("/:id/close", h.CloseSport)
}
