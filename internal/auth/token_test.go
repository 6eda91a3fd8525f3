package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	validator := NewTokenValidator("top-secret")
	token := mintToken(t, "top-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Name:  "Ada",
		Roles: []string{RoleAdmin},
	})

	identity, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.Id)
	assert.Equal(t, "Ada", identity.Name)
	assert.True(t, identity.IsAdmin())
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	validator := NewTokenValidator("top-secret")
	token := mintToken(t, "other-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})

	_, err := validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRequiresSubject(t *testing.T) {
	validator := NewTokenValidator("top-secret")
	token := mintToken(t, "top-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	validator := NewTokenValidator("top-secret")
	token := mintToken(t, "top-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestHasRole(t *testing.T) {
	identity := Identity{Id: "u", Roles: []string{"editor"}}
	assert.True(t, identity.HasRole("editor"))
	assert.False(t, identity.IsAdmin())
}
