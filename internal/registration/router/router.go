// Package router provides registration module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festhub/sportsfest-api/internal/identity"
	"github.com/festhub/sportsfest-api/internal/notification"
	"github.com/festhub/sportsfest-api/internal/registration/handler"
	"github.com/festhub/sportsfest-api/internal/registration/repository"
	"github.com/festhub/sportsfest-api/internal/registration/service"
	sportRepository "github.com/festhub/sportsfest-api/internal/sport/repository"
)

// RegisterRoutes registers registration module routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	notifier notification.Notifier,
	auth identity.Authorizer,
) {
	repo := repository.New(db)
	sports := sportRepository.New(db)
	svc := service.New(repo, sports, db, notifier, logger)
	h := handler.New(svc, logger)

	user := r.Group("/api/registrations", identity.Required())
	user.POST("", h.Register)
	user.GET("", h.List)
	user.GET("/:id", h.Get)
	user.PATCH("/:id/team", h.UpdateTeam)
	user.POST("/:id/withdraw", h.Withdraw)

	admin := r.Group("/api", identity.Required(), identity.RequireAdmin(auth))
	admin.POST("/registrations/:id/promote", h.Promote)
	admin.POST("/sports/:id/cancel", h.CancelSport)
}
