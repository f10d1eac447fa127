package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"google-auth/internal/config"
	"google-auth/internal/db"
	apihttp "google-auth/internal/http"
	"google-auth/internal/identity"
	"google-auth/internal/metrics"
	"google-auth/internal/repository"
	"google-auth/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)
	verifier := identity.NewGoogleVerifier(cfg.GoogleTokenInfoURL, logger)
	sessionSvc := service.NewSessionService(logger, sessionRepo, cfg.SessionTTL)
	authSvc := service.NewAuthService(logger, verifier, userRepo, sessionSvc)
	collector := metrics.NewCollector()

	authHandler := apihttp.NewAuthHandler(logger, authSvc, sessionSvc, collector)
	healthHandler := apihttp.NewHealthHandler(logger, pool)
	router := apihttp.NewRouter(logger, collector, authHandler, healthHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
