// Package auth resolves bearer tokens into a caller identity. The core only
// ever consumes the resolved id and role set.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slices"
)

const RoleAdmin = "admin"

type Identity struct {
	Id    string
	Name  string
	Roles []string
}

func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

func (i Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}

type Claims struct {
	jwt.RegisteredClaims
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

type TokenValidator struct {
	secret []byte
}

func NewTokenValidator(secret string) *TokenValidator {
	return &TokenValidator{secret: []byte(secret)}
}

func (tv *TokenValidator) ValidateToken(tokenString string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tv.secret, nil
	})
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid || claims.Subject == "" {
		return Identity{}, errors.New("invalid token claims")
	}
	return Identity{
		Id:    claims.Subject,
		Name:  claims.Name,
		Roles: claims.Roles,
	}, nil
}
