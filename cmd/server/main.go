// Package main provides the entry point for the HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/festhub/sportsfest-api/internal/config"
	"github.com/festhub/sportsfest-api/internal/database/database"
	"github.com/festhub/sportsfest-api/internal/database/migrate"
	"github.com/festhub/sportsfest-api/internal/health"
	"github.com/festhub/sportsfest-api/internal/identity"
	"github.com/festhub/sportsfest-api/internal/middleware"
	"github.com/festhub/sportsfest-api/internal/notification"
	"github.com/festhub/sportsfest-api/internal/payment/gateway"
	paymentRouter "github.com/festhub/sportsfest-api/internal/payment/router"
	registrationRouter "github.com/festhub/sportsfest-api/internal/registration/router"
	sportRouter "github.com/festhub/sportsfest-api/internal/sport/router"
	"github.com/festhub/sportsfest-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))

	auth := identity.NewStaticAuthorizer(cfg.Auth.AdminUserIDs)
	notifier := notification.NewLogNotifier(zapLogger)
	gw := gateway.NewLocal()

	sportRouter.RegisterRoutes(r, db, zapLogger, auth)
	registrationRouter.RegisterRoutes(r, db, zapLogger, notifier, auth)
	paymentRouter.RegisterRoutes(r, db, zapLogger, cfg.Payment, gw, notifier, auth)

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zapLogger.Infow("server starting", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatalw("server stopped", "error", err)
	}
}
