package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	signed, err := GenerateAccessToken(7, "leader", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ValidateToken(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "leader", claims.Role)
	assert.Equal(t, "weekpulse", claims.Issuer)
}

func TestRefreshTokenCarriesNoRole(t *testing.T) {
	signed, err := GenerateRefreshToken(7, testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateToken(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Empty(t, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	signed, err := GenerateAccessToken(7, "member", testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateToken(signed, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	signed, err := GenerateAccessToken(7, "member", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateToken(signed, testSecret)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, err := GenerateAccessToken(7, "member", "", 15)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-jwt", testSecret)
	assert.Error(t, err)

	_, err = ValidateToken("", testSecret)
	assert.Error(t, err)
}
