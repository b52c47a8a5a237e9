// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"catalog/config"
	"catalog/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
// Only HS256 is accepted; the algorithm identifier in config is a guard
// against accidental downgrades, not a pluggable choice.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.Algorithm != jwt.SigningMethodHS256.Alg() {
		return nil, errors.Errorf("unsupported jwt signing algorithm %q", cfg.JWT.Algorithm)
	}

	return &jwtService{
		secret:    []byte(cfg.JWT.Secret),
		accessTTL: time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute,
		now:       time.Now,
	}, nil
}

// Issue creates a signed access token carrying the account ID as the subject
// claim and an absolute expiry of now + TTL.
func (s *jwtService) Issue(accountID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Verify recomputes the signature and checks structure and expiry.
// Every failure maps onto exactly one of the service token errors; any
// ambiguity still results in rejection, never in returning claims.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !token.Valid {
		return nil, service.ErrTokenTampered
	}

	registered, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, service.ErrTokenMalformed
	}

	accountID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	return &service.Claims{
		AccountID:        accountID,
		RegisteredClaims: *registered,
	}, nil
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return service.ErrTokenTampered
	default:
		// Unknown parse failures are treated as tampering so nothing slips
		// through unclassified.
		return service.ErrTokenTampered
	}
}
