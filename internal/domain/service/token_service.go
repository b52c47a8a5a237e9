package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the decoded content of an access token.
type Claims struct {
	AccountID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying the
// self-contained bearer credential. Tokens are stateless: once issued they
// stay valid until their embedded expiry, with no server-side revocation.
type TokenService interface {
	// Issue creates a signed access token whose subject is the given account.
	Issue(accountID uuid.UUID) (string, error)

	// Verify checks the signature, structure and expiry of a token string.
	// It never returns claims alongside an error.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
