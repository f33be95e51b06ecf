package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkedlist-backend/internal/api/routes"
	"linkedlist-backend/internal/auth"
	"linkedlist-backend/internal/cache"
	"linkedlist-backend/internal/config"
	"linkedlist-backend/internal/logger"
	"linkedlist-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "linkedlist-backend/docs" // This is needed for swag
)

//	@title			LinkedList API
//	@version		1.0
//	@description	Personal bookmark manager: links with notes and labels.

//	@host		localhost:5173
//	@BasePath	/

const sessionPurgeInterval = time.Hour

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	logger.Setup(cfg.LogLevel)

	authConfig, err := auth.LoadAuthConfig("")
	if err != nil {
		logrus.Fatal("Failed to load auth configuration: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to open data store: ", err)
	}
	defer store.Close()

	var redisCache cache.Cache
	if authConfig.SessionMode == auth.SessionModeRedis {
		redisCache, err = cache.NewRedisCache(ctx, authConfig.RedisURL, "linkedlist:")
		if err != nil {
			logrus.Fatal("Failed to connect to Redis: ", err)
		}
		defer redisCache.Close()
	}

	sessions, err := auth.NewSessionManager(authConfig, store, redisCache)
	if err != nil {
		logrus.Fatal("Failed to initialize sessions: ", err)
	}
	if authConfig.SessionMode == auth.SessionModeStore {
		go auth.PurgeExpiredSessions(ctx, store, sessionPurgeInterval)
	}

	var provider auth.Provider
	if authConfig.GitHubConfigured() {
		provider = auth.NewGitHubClient(authConfig)
	} else {
		logrus.Warn("GITHUB_CLIENT_ID/GITHUB_CLIENT_SECRET not set, sign-in is disabled")
	}
	authService := auth.NewAuthService(authConfig, provider, sessions, store)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRoutes(store, authService, cfg)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":         cfg.Port,
			"session_mode": authConfig.SessionMode,
			"real_backend": cfg.UseRealBackend(),
		}).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Error("Server failed: ", err)
			stop()
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	// wait max 5 secs for pending requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
		os.Exit(1)
	}
}
