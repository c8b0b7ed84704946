package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenRoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)

	tokenStr, err := svc.NewToken("admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := svc.DecodeToken(tokenStr)
	require.NoError(t, err)

	claims := token.Claims.(jwtlib.MapClaims)
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, true, claims["admin"])
}

func TestDecodeTokenWrongKey(t *testing.T) {
	issuer := New("secret", time.Hour)
	verifier := New("other-secret", time.Hour)

	tokenStr, err := issuer.NewToken("admin@example.com")
	require.NoError(t, err)

	_, err = verifier.DecodeToken(tokenStr)
	assert.Error(t, err)
}

func TestDecodeTokenExpired(t *testing.T) {
	svc := New("secret", -time.Minute)

	tokenStr, err := svc.NewToken("admin@example.com")
	require.NoError(t, err)

	_, err = svc.DecodeToken(tokenStr)
	assert.Error(t, err)
}

func TestDecodeTokenGarbage(t *testing.T) {
	svc := New("secret", time.Hour)

	_, err := svc.DecodeToken("not.a.token")
	assert.Error(t, err)
}
