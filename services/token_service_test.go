package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	signed, err := svc.Generate("user-123", "golfer@example.com")
	require.NoError(t, err)

	claims, err := svc.Validate(signed)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims["sub"])
	require.Equal(t, "golfer@example.com", claims["email"])
	require.Equal(t, "access", claims["typ"])
	require.NotEmpty(t, claims["jti"])
}

func TestTokenUniqueJTI(t *testing.T) {
	svc := NewTokenService("test-secret")

	first, err := svc.Generate("user-123", "golfer@example.com")
	require.NoError(t, err)
	second, err := svc.Generate("user-123", "golfer@example.com")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	signed, err := NewTokenService("test-secret").Generate("user-123", "golfer@example.com")
	require.NoError(t, err)

	_, err = NewTokenService("other-secret").Validate(signed)
	require.Error(t, err)
}

func TestTokenRejectsUnsignedAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-123"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret").Validate(signed)
	require.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := NewTokenService("test-secret").Validate("not.a.jwt")
	require.Error(t, err)
}
