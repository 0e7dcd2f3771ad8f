// Package jwt issues and validates the HS256 session tokens used by staff
// logins.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and validates admin session tokens.
type TokenService struct {
	secret    []byte
	expiresIn time.Duration
}

// NewTokenService creates a TokenService. expiresIn bounds the token lifetime.
func NewTokenService(secret string, expiresIn time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiresIn: expiresIn}
}

// Generate signs a token for the given admin identity.
func (s *TokenService) Generate(adminID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   adminID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiresIn).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a token and returns its claims.
func (s *TokenService) Validate(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
