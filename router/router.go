package router

import (
	"net/http"

	"go-iptv-portal/handler"
	"go-iptv-portal/service"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "go-iptv-portal/docs"
)

// NewRouter wires all handlers onto a ServeMux. Protected routes sit behind
// the session middleware; everything is wrapped in request logging.
func NewRouter(authHandler *handler.AuthHandler, channelHandler *handler.ChannelHandler, pageHandler *handler.PageHandler, authService *service.AuthService) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handler.HealthCheck)
	mux.Handle("/generate-token", handler.ErrorHandlingMiddleware(authHandler.GenerateToken))
	mux.Handle("/validate-token", handler.ErrorHandlingMiddleware(authHandler.ValidateToken))

	mux.Handle("/check-session", handler.SessionMiddleware(authService, handler.ErrorHandlingMiddleware(authHandler.CheckSession)))
	mux.Handle("/refresh-session", handler.SessionMiddleware(authService, handler.ErrorHandlingMiddleware(authHandler.RefreshSession)))
	mux.Handle("/channels", handler.SessionMiddleware(authService, handler.ErrorHandlingMiddleware(channelHandler.ListChannels)))

	mux.HandleFunc("/iptv", pageHandler.IPTV)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Catch-all: the login page on "/" and public assets everywhere else.
	mux.HandleFunc("/", pageHandler.Home)

	return handler.RequestLoggingMiddleware(mux)
}
