package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/caleb-rm/worship-rota-api/internal/dto"
	appErrors "github.com/caleb-rm/worship-rota-api/pkg/errors"
)

func newAuthService(cfg AuthConfig) *AuthService {
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "test-secret"
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = time.Hour
	}
	return NewAuthService(nil, nil, cfg)
}

func TestAuthServicePlainCode(t *testing.T) {
	svc := newAuthService(AuthConfig{AccessCodes: []string{"sunday"}})

	session, err := svc.Authenticate(context.Background(), dto.AccessRequest{Code: "sunday"})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
}

func TestAuthServiceHashedCode(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sunday"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := newAuthService(AuthConfig{AccessCodeHashes: []string{string(hash)}})

	_, err = svc.Authenticate(context.Background(), dto.AccessRequest{Code: "sunday"})
	require.NoError(t, err)
}

func TestAuthServiceRejectsWrongCode(t *testing.T) {
	svc := newAuthService(AuthConfig{AccessCodes: []string{"sunday"}})

	_, err := svc.Authenticate(context.Background(), dto.AccessRequest{Code: "monday"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidAccessCode.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceRejectsEmptyCode(t *testing.T) {
	svc := newAuthService(AuthConfig{AccessCodes: []string{"sunday"}})

	_, err := svc.Authenticate(context.Background(), dto.AccessRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceRejectsForgedToken(t *testing.T) {
	issuer := newAuthService(AuthConfig{AccessCodes: []string{"sunday"}})
	session, err := issuer.Authenticate(context.Background(), dto.AccessRequest{Code: "sunday"})
	require.NoError(t, err)

	verifier := newAuthService(AuthConfig{SessionSecret: "other-secret"})
	_, err = verifier.ValidateToken(session.Token)
	require.Error(t, err)
}
