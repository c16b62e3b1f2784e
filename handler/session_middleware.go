package handler

import (
	"context"
	"net/http"

	"go-iptv-portal/common"
	"go-iptv-portal/service"
)

// SessionCookieName is the cookie carrying the session identifier.
const SessionCookieName = "sessionId"

type contextKey string

// SessionIDKey holds the validated session identifier in the request context.
const SessionIDKey contextKey = "sessionID"

// SessionMiddleware gates protected routes on a valid session cookie. Every
// failure yields the same generic 401, so a client cannot tell a missing
// cookie from an unknown or expired session.
func SessionMiddleware(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil).Send(w)
			return
		}

		if _, ok := auth.CheckSession(cookie.Value); !ok {
			common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil).Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
