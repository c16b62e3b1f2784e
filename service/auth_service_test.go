package service

import (
	"testing"
	"time"

	"go-iptv-portal/common"
	"go-iptv-portal/store"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTokenModeService(t *testing.T) (*AuthService, *store.TokenStore, *store.SessionStore) {
	t.Helper()
	tokens := store.NewTokenStore(5 * time.Minute)
	sessions := store.NewSessionStore(time.Hour)
	return NewAuthService(NewTokenVerifier(tokens), tokens, sessions), tokens, sessions
}

func TestAuthService_TokenLogin(t *testing.T) {
	svc, _, _ := newTokenModeService(t)

	grant, err := svc.IssueToken()
	assert.NoError(t, err)
	assert.NotEmpty(t, grant.Token)

	sess, err := svc.Login(Credential{Token: grant.Token})
	assert.NoError(t, err)
	assert.NotEmpty(t, sess.ID)

	_, ok := svc.CheckSession(sess.ID)
	assert.True(t, ok)
}

func TestAuthService_TokenIsSingleUse(t *testing.T) {
	svc, _, _ := newTokenModeService(t)

	grant, err := svc.IssueToken()
	assert.NoError(t, err)

	_, err = svc.Login(Credential{Token: grant.Token})
	assert.NoError(t, err)

	_, err = svc.Login(Credential{Token: grant.Token})
	assert.ErrorIs(t, err, common.ErrInvalidCredential, "a consumed token must not issue a second session")
}

func TestAuthService_BadTokenLogin(t *testing.T) {
	svc, _, sessions := newTokenModeService(t)

	t.Run("missing token", func(t *testing.T) {
		_, err := svc.Login(Credential{})
		assert.ErrorIs(t, err, common.ErrInvalidCredential)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Login(Credential{Token: "deadbeefdeadbeefdeadbeefdeadbeef"})
		assert.ErrorIs(t, err, common.ErrInvalidCredential)
	})

	assert.Equal(t, 0, sessions.Len(), "failed logins must not create sessions")
}

func TestAuthService_RefreshSession(t *testing.T) {
	svc, _, _ := newTokenModeService(t)

	grant, err := svc.IssueToken()
	assert.NoError(t, err)
	sess, err := svc.Login(Credential{Token: grant.Token})
	assert.NoError(t, err)

	next, ok := svc.RefreshSession(sess.ID)
	assert.True(t, ok)
	assert.False(t, next.Before(sess.Expiry))

	_, ok = svc.RefreshSession("unknown")
	assert.False(t, ok)
}

func TestAccessCodeVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	assert.NoError(t, err)

	v := NewAccessCodeVerifier(string(hash))

	assert.True(t, v.Verify(Credential{AccessCode: "open-sesame"}))
	assert.False(t, v.Verify(Credential{AccessCode: "wrong-code"}))
	assert.False(t, v.Verify(Credential{}))
	assert.False(t, NewAccessCodeVerifier("").Verify(Credential{AccessCode: "open-sesame"}))
}

func TestAuthService_AccessCodeLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	assert.NoError(t, err)

	tokens := store.NewTokenStore(5 * time.Minute)
	sessions := store.NewSessionStore(time.Hour)
	svc := NewAuthService(NewAccessCodeVerifier(string(hash)), tokens, sessions)

	sess, err := svc.Login(Credential{AccessCode: "open-sesame"})
	assert.NoError(t, err)
	_, ok := svc.CheckSession(sess.ID)
	assert.True(t, ok)

	_, err = svc.Login(Credential{AccessCode: "wrong-code"})
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
}

func TestNewVerifier(t *testing.T) {
	tokens := store.NewTokenStore(5 * time.Minute)

	t.Run("default mode is token", func(t *testing.T) {
		v, err := NewVerifier("", "", tokens)
		assert.NoError(t, err)
		assert.IsType(t, &TokenVerifier{}, v)
	})

	t.Run("token mode", func(t *testing.T) {
		v, err := NewVerifier(ModeToken, "", tokens)
		assert.NoError(t, err)
		assert.IsType(t, &TokenVerifier{}, v)
	})

	t.Run("access_code mode requires a hash", func(t *testing.T) {
		_, err := NewVerifier(ModeAccessCode, "", tokens)
		assert.Error(t, err)
	})

	t.Run("access_code mode", func(t *testing.T) {
		v, err := NewVerifier(ModeAccessCode, "$2a$04$notarealhashbutnonempty", tokens)
		assert.NoError(t, err)
		assert.IsType(t, &AccessCodeVerifier{}, v)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := NewVerifier("saml", "", tokens)
		assert.Error(t, err)
	})
}
