package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-iptv-portal/config"
	"go-iptv-portal/db"
	"go-iptv-portal/handler"
	"go-iptv-portal/logger"
	"go-iptv-portal/repository"
	"go-iptv-portal/router"
	"go-iptv-portal/service"
	"go-iptv-portal/store"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	cfg := config.AppConfig

	// --- Wiring All Layers Together ---
	// The stores are the single concurrency-sensitive resource; they are
	// constructed here and injected downward, never reached as globals.

	tokenStore := store.NewTokenStore(cfg.Auth.TokenTTL)
	sessionStore := store.NewSessionStore(cfg.Auth.SessionTTL)

	sweeper := store.NewSweeper(tokenStore, sessionStore, cfg.Auth.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	verifier, err := service.NewVerifier(cfg.Auth.Mode, cfg.Auth.AccessCodeHash, tokenStore)
	if err != nil {
		logger.Log.Fatalf("Invalid auth configuration: %v", err)
	}
	authService := service.NewAuthService(verifier, tokenStore, sessionStore)
	authHandler := handler.NewAuthHandler(authService, cfg.Server.TLSTerminated)

	// The catalog cache is optional; without a Redis address every request
	// reads the catalog file directly.
	var cacheClient service.ICacheClient
	if cfg.Redis.Addr != "" {
		rdb, err := db.ConnectRedis()
		if err != nil {
			logger.Log.Fatalf("Error connecting to Redis: %v", err)
		}
		defer rdb.Close()
		cacheClient = rdb
	}

	channelRepo := repository.NewFileChannelRepository(cfg.Catalog.Path)
	channelService := service.NewChannelService(channelRepo, cacheClient, cfg.Catalog.CacheTTL)
	channelHandler := handler.NewChannelHandler(channelService)

	pageHandler := handler.NewPageHandler(authService, cfg.Server.PublicDir)

	r := router.NewRouter(authHandler, channelHandler, pageHandler, authService)

	// --- Start the Server with Graceful Shutdown ---
	port := cfg.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
