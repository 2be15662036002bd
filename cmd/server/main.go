package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gravity-server/internal/api"
	"gravity-server/internal/auth"
	"gravity-server/internal/database"
	"gravity-server/internal/payments"
	"gravity-server/pkg/config"
	"gravity-server/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development reads secrets from .env; absence is fine elsewhere
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs/server.yaml")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	appLogger := logger.NewLogger(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	})
	appLogger.Info("Configuration loaded: %+v", cfg.SanitizeForLogging())

	// A missing signing secret must kill the process here, not surface per
	// request later
	tokenManager, err := auth.NewTokenManager(cfg.Security.JWTSecret, cfg.Security.TokenTTL)
	if err != nil {
		appLogger.Fatal("Token manager init failed: %v", err)
	}

	client, err := database.NewConnection(context.Background(), &cfg.Database)
	if err != nil {
		appLogger.Fatal("Database connection failed: %v", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background(), client); err != nil {
			appLogger.Error("Database disconnect failed: %v", err)
		}
	}()
	appLogger.Info("Connected to MongoDB")

	provider := payments.NewStripeProvider(cfg.Payments.StripeSecretKey, cfg.Payments.Currency)

	services := api.NewServices(client, tokenManager, provider, appLogger, cfg)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	api.SetupRoutes(router, services)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Gravity server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server shutdown failed: %v", err)
	}
	appLogger.Info("Server stopped")
}
