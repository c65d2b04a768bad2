// Package jwt issues and validates the HS256 capability tokens that guard
// the administrative surface. Client-facing authentication uses opaque
// bearer tokens instead; see internal/pkg/token.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/paysetu/bbps-account/internal/pkg/models"
)

// AdminRole is the role claim required by the admin route group
const AdminRole = "admin"

// GenerateAdminToken generates a signed admin capability token for the given
// subject (typically an operator or the provider callback integration)
func GenerateAdminToken(subject string, ttl time.Duration, cfg *models.Config) (string, int64, error) {
	expiresAt := time.Now().Add(ttl).Unix()

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": AdminRole,
		"exp":  expiresAt,
		"iss":  cfg.Auth.AdminIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Auth.AdminSecret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a signed token and returns its claims
func ValidateToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}
