package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"finddoctor-service/internal/pkg/exceptions"
)

// GenerateSessionToken signs a short JWT whose subject is the session ID held
// in Redis. The session carries the core API token, this token only points at
// the session.
func GenerateSessionToken(sessionID, secret string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

// ParseSessionToken verifies a session JWT and returns the session ID.
func ParseSessionToken(tokenString, secret string) (string, error) {
	claims := new(jwt.RegisteredClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	return claims.Subject, nil
}

// TokenExpired decodes a core API token without verifying its signature (the
// core API is the verifier) and reports whether its exp claim has passed. A
// token that cannot be decoded counts as expired, mirroring how the frontend
// treated undecodable tokens.
func TokenExpired(tokenString string) bool {
	claims := new(jwt.RegisteredClaims)
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	_, _, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}

// RoleFromToken extracts the role claim from a core API token without
// verifying it.
func RoleFromToken(tokenString string) string {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	_, _, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// TokenExpiry returns the exp claim of a core API token, or zero time when it
// has none.
func TokenExpiry(tokenString string) time.Time {
	claims := new(jwt.RegisteredClaims)
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	_, _, err := parser.ParseUnverified(tokenString, claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
