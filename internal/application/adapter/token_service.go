// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims carried by an access token.
type TokenClaims struct {
	AccountID uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the account.
	GenerateAccessToken(accountID uuid.UUID, email string) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)
}
