package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-iptv-portal/service"
)

// PageHandler serves the login page, the protected page and public assets.
type PageHandler struct {
	auth      *service.AuthService
	publicDir string
}

func NewPageHandler(auth *service.AuthService, publicDir string) *PageHandler {
	return &PageHandler{auth: auth, publicDir: publicDir}
}

// Home serves the login page for "/" and public assets for every other path.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		http.ServeFile(w, r, filepath.Join(h.publicDir, "index.html"))
		return
	}
	h.serveStatic(w, r)
}

// IPTV serves the protected page. A browser without a live session is bounced
// back to the login page instead of being shown a bare 401.
func (h *PageHandler) IPTV(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if _, ok := h.auth.CheckSession(cookie.Value); !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.publicDir, "iptv.html"))
}

// serveStatic serves files strictly from the public directory. The mux
// already canonicalizes paths, but the containment check stays here so the
// handler is safe on its own.
func (h *PageHandler) serveStatic(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, "/")
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	// The protected page is only reachable through the gated /iptv route;
	// requesting the file directly goes through the gate too.
	if clean == "iptv.html" {
		http.Redirect(w, r, "/iptv", http.StatusSeeOther)
		return
	}

	full := filepath.Join(h.publicDir, clean)
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, full)
}
