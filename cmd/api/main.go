package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pridecenter/pride-backend/api/routes"
	"github.com/pridecenter/pride-backend/internal/config"
	"github.com/pridecenter/pride-backend/internal/handlers"
	"github.com/pridecenter/pride-backend/internal/logger"
	mongorepo "github.com/pridecenter/pride-backend/internal/repositories/mongodb"
	"github.com/pridecenter/pride-backend/internal/services"
	"github.com/pridecenter/pride-backend/internal/store"
	"github.com/pridecenter/pride-backend/pkg/jwt"
	"github.com/pridecenter/pride-backend/pkg/mongodb"
	"github.com/pridecenter/pride-backend/pkg/prideapi"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	ctx := context.Background()

	mongoClient, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zlog.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureAdminUserIndexes(ctx, db); err != nil {
		zlog.Warn("Failed to ensure admin user indexes", zap.Error(err))
	}

	// Repositories
	adminUserRepo := mongorepo.NewAdminUserRepository(db)
	blockedDeviceRepo := mongorepo.NewBlockedDeviceRepository(db)
	submissionRepo := mongorepo.NewSubmissionRepository(db)

	// Short-lived state: Redis when configured, process memory otherwise
	var (
		wizardStore store.WizardStore
		denylist    store.TokenDenylist
	)
	if cfg.Redis.URL != "" {
		redisClient, err := store.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			zlog.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		wizardStore = store.NewRedisWizardStore(redisClient, cfg.Redis.WizardTTL)
		denylist = store.NewRedisDenylist(redisClient)
		zlog.Info("Using Redis for wizard sessions")
	} else {
		wizardStore = store.NewMemoryWizardStore(cfg.Redis.WizardTTL)
		denylist = store.NewMemoryDenylist()
		zlog.Warn("Redis URL not set, wizard sessions are kept in memory")
	}

	api := prideapi.NewClient(cfg.PrideAPI.BaseURL, cfg.PrideAPI.Token, cfg.PrideAPI.Timeout, cfg.PrideAPI.MockAPI, zlog)
	if cfg.PrideAPI.MockAPI {
		zlog.Warn("REST API calls are mocked")
	}

	// Services
	tokens := jwt.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn)
	authService := services.NewAuthService(adminUserRepo, tokens, denylist, zlog)
	adminUserService := services.NewAdminUserService(adminUserRepo)
	moderationService := services.NewModerationService(blockedDeviceRepo, cfg.Moderation.ExtraBannedWords, zlog)
	referenceService := services.NewReferenceService(api, cfg.PrideAPI.OrganizationID, zlog)
	sponsorService := services.NewSponsorService(api)
	submissionService := services.NewSubmissionService(wizardStore, api, referenceService, moderationService, submissionRepo, zlog)

	handlerDeps := routes.HandlerDependencies{
		AuthService:       authService,
		AuthHandler:       handlers.NewAuthHandler(authService, adminUserService),
		AdminUserHandler:  handlers.NewAdminUserHandler(adminUserService),
		ModerationHandler: handlers.NewModerationHandler(moderationService),
		WizardHandler:     handlers.NewWizardHandler(submissionService),
		ReferenceHandler:  handlers.NewReferenceHandler(referenceService, sponsorService),
		Ping:              mongoClient.Ping,
		Logger:            zlog,
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      routes.SetupRouter(cfg, handlerDeps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("listen", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exiting")
}
