package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken(42, "ADMIN")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.OfficerID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.NotEmpty(t, claims.ID, "tokens carry a JTI for revocation")
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, err := svc.GenerateAccessToken(42, "ADMIN")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := NewService("secret-a", time.Hour).GenerateAccessToken(42, "ADMIN")
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	_, err := NewService("test-secret", time.Hour).ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUniqueTokenIDs(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	a, err := svc.GenerateAccessToken(1, "POLICE")
	require.NoError(t, err)
	b, err := svc.GenerateAccessToken(1, "POLICE")
	require.NoError(t, err)

	claimsA, err := svc.ValidateAccessToken(a)
	require.NoError(t, err)
	claimsB, err := svc.ValidateAccessToken(b)
	require.NoError(t, err)

	assert.NotEqual(t, claimsA.ID, claimsB.ID)
}
