package client

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims the service puts in both login and CLI tokens.
type TokenClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ParseToken reads the claims of a stored token. The signature is not checked,
// so the result is for display only.
func ParseToken(token string) (*TokenClaims, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &TokenClaims{})
	if err != nil {
		return nil, err
	}
	if claims, ok := parsed.Claims.(*TokenClaims); ok {
		return claims, nil
	}
	return nil, errors.New("invalid token claims")
}
