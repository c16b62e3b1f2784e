package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go-iptv-portal/common"
	"go-iptv-portal/logger"
	"go-iptv-portal/model"
	"go-iptv-portal/service"
)

// AuthHandler exposes the token and session lifecycle over HTTP.
type AuthHandler struct {
	service       *service.AuthService
	tlsTerminated bool
}

// NewAuthHandler creates an AuthHandler. tlsTerminated is the deployment
// signal controlling the Secure flag on session cookies.
func NewAuthHandler(service *service.AuthService, tlsTerminated bool) *AuthHandler {
	return &AuthHandler{service: service, tlsTerminated: tlsTerminated}
}

// GenerateToken godoc
// @Summary      Issue a one-time access token
// @Description  Returns a fresh token and its expiry. The token grants nothing until redeemed.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  model.TokenGrant
// @Router       /generate-token [get]
func (h *AuthHandler) GenerateToken(w http.ResponseWriter, r *http.Request) *common.AppError {
	if r.Method != http.MethodGet {
		return common.NewAppError(http.StatusMethodNotAllowed, "Method not allowed", nil)
	}

	grant, err := h.service.IssueToken()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue token", err)
	}

	logger.Log.WithField("expiry", grant.Expiry).Info("Access token issued")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(grant)
	return nil
}

// ValidateToken godoc
// @Summary      Redeem a credential for a session
// @Description  Accepts a JSON or form-encoded credential. On success a session cookie is set; form clients are redirected to the protected page.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  model.ValidateTokenRequest  true  "credential"
// @Success      200  {object}  model.SessionStatusResponse
// @Failure      400  {object}  common.AppError
// @Router       /validate-token [post]
func (h *AuthHandler) ValidateToken(w http.ResponseWriter, r *http.Request) *common.AppError {
	if r.Method != http.MethodPost {
		return common.NewAppError(http.StatusMethodNotAllowed, "Method not allowed", nil)
	}

	cred, isForm, ok := decodeCredential(w, r)
	if !ok {
		// Response already written by the decoding helper.
		return nil
	}

	sess, err := h.service.Login(cred)
	if err != nil {
		if !errors.Is(err, common.ErrInvalidCredential) {
			return common.NewAppError(http.StatusInternalServerError, "Could not create session", err)
		}
		if isForm {
			http.Redirect(w, r, "/?error=invalid", http.StatusSeeOther)
			return nil
		}
		// Deliberately generic: the client never learns whether the token
		// was missing, unknown, expired or already consumed.
		return common.NewAppError(http.StatusBadRequest, "Invalid or expired token", nil)
	}

	http.SetCookie(w, h.sessionCookie(sess))
	logger.Log.WithField("expiry", sess.Expiry).Info("Session issued")

	if isForm {
		http.Redirect(w, r, "/iptv", http.StatusSeeOther)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.SessionStatusResponse{Success: true, Expiry: sess.Expiry})
	return nil
}

// CheckSession godoc
// @Summary      Check the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  model.SessionStatusResponse
// @Failure      401  {object}  common.AppError
// @Router       /check-session [get]
func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) *common.AppError {
	if r.Method != http.MethodGet {
		return common.NewAppError(http.StatusMethodNotAllowed, "Method not allowed", nil)
	}

	id, _ := r.Context().Value(SessionIDKey).(string)
	expiry, ok := h.service.CheckSession(id)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.SessionStatusResponse{Success: true, Expiry: expiry})
	return nil
}

// RefreshSession godoc
// @Summary      Slide the session expiry forward
// @Tags         auth
// @Produce      json
// @Success      200  {object}  model.SessionStatusResponse
// @Failure      400  {object}  common.AppError
// @Router       /refresh-session [post]
func (h *AuthHandler) RefreshSession(w http.ResponseWriter, r *http.Request) *common.AppError {
	if r.Method != http.MethodPost {
		return common.NewAppError(http.StatusMethodNotAllowed, "Method not allowed", nil)
	}

	id, _ := r.Context().Value(SessionIDKey).(string)
	expiry, ok := h.service.RefreshSession(id)
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Could not refresh session", nil)
	}

	// Re-issue the cookie so its Expires slides along with the server-side
	// expiry; otherwise the browser drops it at the original instant even
	// though the session is still live.
	http.SetCookie(w, h.sessionCookie(&model.Session{ID: id, Expiry: expiry}))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.SessionStatusResponse{Success: true, Expiry: expiry})
	return nil
}

// decodeCredential extracts the presented credential from a JSON or
// form-encoded body. On a malformed body it writes a 400 and returns ok=false.
func decodeCredential(w http.ResponseWriter, r *http.Request) (cred service.Credential, isForm, ok bool) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var req model.ValidateTokenRequest
		if !common.ValidateAndDecode(w, r, &req) {
			return service.Credential{}, false, false
		}
		return service.Credential{Token: req.Token, AccessCode: req.AccessCode}, false, true
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return service.Credential{}, true, false
	}
	return service.Credential{
		Token:      r.PostFormValue("token"),
		AccessCode: r.PostFormValue("accessCode"),
	}, true, true
}

func (h *AuthHandler) sessionCookie(sess *model.Session) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.Expiry,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		// Secure follows the deployment configuration. Trusting a
		// forwarded-proto request header here would let a client toggle the
		// security of its own cookie.
		Secure: h.tlsTerminated,
	}
}
