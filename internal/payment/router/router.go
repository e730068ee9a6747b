// Package router provides payment module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festhub/sportsfest-api/internal/config"
	"github.com/festhub/sportsfest-api/internal/identity"
	"github.com/festhub/sportsfest-api/internal/notification"
	"github.com/festhub/sportsfest-api/internal/payment/gateway"
	"github.com/festhub/sportsfest-api/internal/payment/handler"
	"github.com/festhub/sportsfest-api/internal/payment/repository"
	"github.com/festhub/sportsfest-api/internal/payment/service"
	registrationRepository "github.com/festhub/sportsfest-api/internal/registration/repository"
	sportRepository "github.com/festhub/sportsfest-api/internal/sport/repository"
)

// RegisterRoutes registers payment module routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	cfg config.PaymentConfig,
	gw gateway.Gateway,
	notifier notification.Notifier,
	auth identity.Authorizer,
) {
	repo := repository.New(db)
	registrations := registrationRepository.New(db)
	sports := sportRepository.New(db)
	svc := service.New(repo, registrations, sports, db, gw, cfg, notifier, logger)
	h := handler.New(svc, logger)

	r.POST("/api/payments/order", identity.Required(), h.CreateOrder)
	// Gateway callback: authenticated by signature, not by user identity.
	r.POST("/api/payments/verify", h.Verify)

	admin := r.Group("/api/payments", identity.Required(), identity.RequireAdmin(auth))
	admin.POST("/:registrationId/refund", h.Refund)
}
