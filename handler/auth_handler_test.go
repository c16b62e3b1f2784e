package handler

import (
	"net/http"
	"testing"
	"time"

	"go-iptv-portal/model"
	"go-iptv-portal/service"
	"go-iptv-portal/store"

	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_SessionCookieFlags(t *testing.T) {
	tokens := store.NewTokenStore(5 * time.Minute)
	sessions := store.NewSessionStore(time.Hour)
	auth := service.NewAuthService(service.NewTokenVerifier(tokens), tokens, sessions)

	sess := &model.Session{ID: "abc", Expiry: time.Now().Add(time.Hour)}

	t.Run("plain deployment", func(t *testing.T) {
		h := NewAuthHandler(auth, false)
		cookie := h.sessionCookie(sess)

		assert.Equal(t, SessionCookieName, cookie.Name)
		assert.Equal(t, "abc", cookie.Value)
		assert.Equal(t, "/", cookie.Path)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.False(t, cookie.Secure)
	})

	t.Run("tls-terminated deployment", func(t *testing.T) {
		h := NewAuthHandler(auth, true)
		cookie := h.sessionCookie(sess)

		assert.True(t, cookie.Secure)
	})
}
