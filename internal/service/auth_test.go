package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tably-app/backoffice-service/internal/models"
)

func TestTokenRoundtrip(t *testing.T) {
	svc := NewAuthService(nil, JWTConfig{Secret: "test-secret", ExpiresIn: 24})

	userID := uuid.New()
	token, err := svc.generateToken(userID, models.RoleManager)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, string(models.RoleManager), claims.Role)

	// A 24h expiry means the session lasts one day, never refreshed.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (24 * time.Hour).Seconds(), remaining.Seconds(), 60)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, JWTConfig{Secret: "secret-a", ExpiresIn: 24})
	verifier := NewAuthService(nil, JWTConfig{Secret: "secret-b", ExpiresIn: 24})

	token, err := issuer.generateToken(uuid.New(), models.RoleSuperadmin)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(nil, JWTConfig{Secret: "test-secret", ExpiresIn: -1})

	token, err := svc.generateToken(uuid.New(), models.RoleWaiter)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(nil, JWTConfig{Secret: "test-secret", ExpiresIn: 24})

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
