package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID uuid.UUID
	Role   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless: validity is cryptographic and time-based only, there is
// no server-side session store and no revocation before natural expiry.
type TokenService interface {
	// GenerateToken creates a new signed session token for a given user and role.
	GenerateToken(userID uuid.UUID, role string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured session lifetime.
	GetTokenDuration() time.Duration
}
