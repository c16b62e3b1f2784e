package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-iptv-portal/service"
	"go-iptv-portal/store"

	"github.com/stretchr/testify/assert"
)

func newPageHandlerForTest(t *testing.T) (*PageHandler, *service.AuthService, string) {
	t.Helper()

	publicDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<title>login</title>"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(publicDir, "iptv.html"), []byte("<title>channels</title>"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(publicDir, "style.css"), []byte("body{}"), 0o644))

	tokens := store.NewTokenStore(5 * time.Minute)
	sessions := store.NewSessionStore(time.Hour)
	auth := service.NewAuthService(service.NewTokenVerifier(tokens), tokens, sessions)

	return NewPageHandler(auth, publicDir), auth, publicDir
}

func TestPageHandler_Home(t *testing.T) {
	h, _, _ := newPageHandlerForTest(t)

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	h.Home(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "login")
}

func TestPageHandler_StaticAsset(t *testing.T) {
	h, _, _ := newPageHandlerForTest(t)

	req := httptest.NewRequest("GET", "/style.css", nil)
	rr := httptest.NewRecorder()
	h.Home(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "body{}")
}

func TestPageHandler_TraversalRejected(t *testing.T) {
	h, _, publicDir := newPageHandlerForTest(t)

	// A file just outside the public directory that must stay unreachable.
	secret := filepath.Join(filepath.Dir(publicDir), "secret.txt")
	assert.NoError(t, os.WriteFile(secret, []byte("top secret"), 0o644))

	for _, path := range []string{
		"/../secret.txt",
		"/../../etc/passwd",
		"/assets/../../secret.txt",
	} {
		t.Run(path, func(t *testing.T) {
			// Bypass the mux so the raw path reaches the handler uncleaned.
			req := httptest.NewRequest("GET", "/", nil)
			req.URL.Path = path
			rr := httptest.NewRecorder()
			h.Home(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.NotContains(t, rr.Body.String(), "top secret")
		})
	}
}

func TestPageHandler_ProtectedPageNotServedStatically(t *testing.T) {
	h, _, _ := newPageHandlerForTest(t)

	req := httptest.NewRequest("GET", "/iptv.html", nil)
	rr := httptest.NewRecorder()
	h.Home(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/iptv", rr.Header().Get("Location"))
	assert.NotContains(t, rr.Body.String(), "channels")
}

func TestPageHandler_MissingAsset(t *testing.T) {
	h, _, _ := newPageHandlerForTest(t)

	req := httptest.NewRequest("GET", "/nope.js", nil)
	rr := httptest.NewRecorder()
	h.Home(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPageHandler_IPTVRequiresSession(t *testing.T) {
	h, auth, _ := newPageHandlerForTest(t)

	t.Run("no cookie redirects to login", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/iptv", nil)
		rr := httptest.NewRecorder()
		h.IPTV(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("bad cookie redirects to login", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/iptv", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
		rr := httptest.NewRecorder()
		h.IPTV(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
	})

	t.Run("valid session serves the page", func(t *testing.T) {
		grant, err := auth.IssueToken()
		assert.NoError(t, err)
		sess, err := auth.Login(service.Credential{Token: grant.Token})
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/iptv", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
		rr := httptest.NewRecorder()
		h.IPTV(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "channels")
	})
}
