// Package auth generates the short-lived tokens used by management requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of a generated JWT.
const TokenTTL = time.Hour

// Static errors for err113 compliance.
var (
	ErrSigningKeyRequired = errors.New("API token is required to sign a JWT")
)

// Claims is the payload of a management JWT.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken returns an HS256 JWT signed with apiToken whose "name" claim
// is userID. It is valid for TokenTTL from now.
func GenerateToken(apiToken, userID string) (string, error) {
	return generateTokenAt(apiToken, userID, time.Now())
}

func generateTokenAt(apiToken, userID string, now time.Time) (string, error) {
	if apiToken == "" {
		return "", ErrSigningKeyRequired
	}

	claims := &Claims{
		Name: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(apiToken))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}
