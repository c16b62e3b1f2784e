package app

import (
	"net/http"
	"time"

	"go-iptv-portal/handler"
	"go-iptv-portal/logger"
	"go-iptv-portal/repository"
	"go-iptv-portal/router"
	"go-iptv-portal/service"
	"go-iptv-portal/store"
)

// TestApp bundles the wired application pieces integration tests need. It
// bypasses config loading, runs no sweeper and uses no cache, so tests hold
// the only references to all state.
type TestApp struct {
	Router       http.Handler
	TokenStore   *store.TokenStore
	SessionStore *store.SessionStore
	AuthService  *service.AuthService
}

// NewTestApp wires the full handler stack in token mode against the given
// catalog file and public directory.
func NewTestApp(tokenTTL, sessionTTL time.Duration, catalogPath, publicDir string) *TestApp {
	logger.Init()

	tokenStore := store.NewTokenStore(tokenTTL)
	sessionStore := store.NewSessionStore(sessionTTL)

	authService := service.NewAuthService(service.NewTokenVerifier(tokenStore), tokenStore, sessionStore)
	authHandler := handler.NewAuthHandler(authService, false)

	channelRepo := repository.NewFileChannelRepository(catalogPath)
	channelService := service.NewChannelService(channelRepo, nil, 0)
	channelHandler := handler.NewChannelHandler(channelService)

	pageHandler := handler.NewPageHandler(authService, publicDir)

	return &TestApp{
		Router:       router.NewRouter(authHandler, channelHandler, pageHandler, authService),
		TokenStore:   tokenStore,
		SessionStore: sessionStore,
		AuthService:  authService,
	}
}
