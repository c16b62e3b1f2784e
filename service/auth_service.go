package service

import (
	"errors"
	"fmt"
	"time"

	"go-iptv-portal/common"
	"go-iptv-portal/logger"
	"go-iptv-portal/model"
	"go-iptv-portal/store"

	"golang.org/x/crypto/bcrypt"
)

// Auth modes selectable via configuration.
const (
	ModeToken      = "token"
	ModeAccessCode = "access_code"
)

// Credential carries whatever the client presented to the exchange endpoint.
// Which field matters depends on the configured verifier.
type Credential struct {
	Token      string
	AccessCode string
}

// CredentialVerifier is the single contract every authentication variant
// implements. Session issuance is identical across variants; only the
// credential check differs.
type CredentialVerifier interface {
	Verify(c Credential) bool
}

// TokenVerifier redeems a one-time token from the token store. Redemption is
// atomic: of two requests presenting the same token, at most one verifies.
type TokenVerifier struct {
	tokens *store.TokenStore
}

func NewTokenVerifier(tokens *store.TokenStore) *TokenVerifier {
	return &TokenVerifier{tokens: tokens}
}

func (v *TokenVerifier) Verify(c Credential) bool {
	return v.tokens.Consume(c.Token)
}

// AccessCodeVerifier compares a presented code against a bcrypt hash taken
// from configuration. The plaintext code never appears in source or in the
// config file.
type AccessCodeVerifier struct {
	hash string
}

func NewAccessCodeVerifier(hash string) *AccessCodeVerifier {
	return &AccessCodeVerifier{hash: hash}
}

func (v *AccessCodeVerifier) Verify(c Credential) bool {
	if v.hash == "" || c.AccessCode == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(c.AccessCode)) == nil
}

// NewVerifier selects the credential strategy for the configured mode. An
// empty mode defaults to the token exchange.
func NewVerifier(mode, accessCodeHash string, tokens *store.TokenStore) (CredentialVerifier, error) {
	switch mode {
	case ModeToken, "":
		return NewTokenVerifier(tokens), nil
	case ModeAccessCode:
		if accessCodeHash == "" {
			return nil, errors.New("auth mode access_code requires an access code hash")
		}
		return NewAccessCodeVerifier(accessCodeHash), nil
	default:
		return nil, fmt.Errorf("unknown auth mode: %q", mode)
	}
}

// AuthService owns the token and session lifecycle behind the HTTP layer.
type AuthService struct {
	verifier CredentialVerifier
	tokens   *store.TokenStore
	sessions *store.SessionStore
}

// NewAuthService creates an AuthService over the given verifier and stores.
func NewAuthService(verifier CredentialVerifier, tokens *store.TokenStore, sessions *store.SessionStore) *AuthService {
	return &AuthService{
		verifier: verifier,
		tokens:   tokens,
		sessions: sessions,
	}
}

// IssueToken mints a new one-time access token. No authentication is
// required: a token grants nothing until redeemed.
func (s *AuthService) IssueToken() (*model.TokenGrant, error) {
	token, expiry, err := s.tokens.Issue()
	if err != nil {
		logger.Log.WithError(err).Error("Failed to generate access token")
		return nil, err
	}
	return &model.TokenGrant{Token: token, Expiry: expiry}, nil
}

// Login verifies the presented credential and, on success, issues a session.
// Every verification failure collapses to ErrInvalidCredential so callers
// cannot probe which check rejected them.
func (s *AuthService) Login(c Credential) (*model.Session, error) {
	if !s.verifier.Verify(c) {
		return nil, common.ErrInvalidCredential
	}

	id, expiry, err := s.sessions.Create()
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create session")
		return nil, err
	}
	return &model.Session{ID: id, Expiry: expiry}, nil
}

// CheckSession reports whether id names a live session and its expiry. It
// never extends the session.
func (s *AuthService) CheckSession(id string) (time.Time, bool) {
	return s.sessions.Validate(id)
}

// RefreshSession slides a live session's expiry forward by the session
// duration.
func (s *AuthService) RefreshSession(id string) (time.Time, bool) {
	return s.sessions.Refresh(id)
}
