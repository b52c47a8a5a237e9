package auth

import (
	"strings"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-signing"

// newTestJWTService builds a service with a controllable clock.
func newTestJWTService(ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret:    []byte(testSecret),
		accessTTL: ttl,
		now:       now,
	}
}

func TestNewJWTService_ConfigValidation(t *testing.T) {
	_, err := NewJWTService(&config.Config{JWT: config.JWTConfig{Secret: "", Algorithm: "HS256"}})
	require.Error(t, err)

	_, err = NewJWTService(&config.Config{JWT: config.JWTConfig{Secret: "s", Algorithm: "RS256"}})
	require.Error(t, err)

	svc, err := NewJWTService(&config.Config{JWT: config.JWTConfig{Secret: "s", Algorithm: "HS256", AccessTTLMinutes: 30}})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, svc.AccessTokenDuration())
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(30*time.Minute, time.Now)
	accountID := uuid.New()

	token, err := svc.Issue(accountID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	clock := issuedAt
	svc := newTestJWTService(ttl, func() time.Time { return clock })

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Fresh token verifies.
	_, err = svc.Verify(token)
	require.NoError(t, err)

	// Just inside the lifetime.
	clock = issuedAt.Add(ttl - time.Second)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	// At exactly issued-at + TTL the token is no longer valid.
	clock = issuedAt.Add(ttl)
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrTokenExpired)

	// And it stays invalid afterwards.
	clock = issuedAt.Add(ttl + time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(30*time.Minute, time.Now)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Flip one character in the payload segment. The signature no longer
	// matches, so verification must fail.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload := []byte(parts[1])
	if payload[3] == 'A' {
		payload[3] = 'B'
	} else {
		payload[3] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Verify(tampered)
	require.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(30*time.Minute, time.Now)
	verifier := &jwtService{
		secret:    []byte("a completely different secret"),
		accessTTL: 30 * time.Minute,
		now:       time.Now,
	}

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrTokenTampered)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := newTestJWTService(30*time.Minute, time.Now)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "two segments", token: "aaaa.bbbb"},
		{name: "whitespace", token: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrTokenMalformed)
		})
	}
}

func TestJWTService_RejectsNonUUIDSubject(t *testing.T) {
	svc := newTestJWTService(30*time.Minute, time.Now)

	// Hand-craft a correctly signed token whose subject is not a UUID.
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_UnsignedTokenRejected(t *testing.T) {
	svc := newTestJWTService(30*time.Minute, time.Now)

	// alg=none style token: header and payload with an empty signature.
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJhYmMifQ."
	_, err := svc.Verify(unsigned)
	require.Error(t, err)
}
