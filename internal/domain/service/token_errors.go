package service

import "errors"

// Verification failure taxonomy. These distinctions exist for logging and
// tests; at the delivery boundary they all collapse into one unauthenticated
// signal so the wire never reveals why a token was rejected.
var (
	// ErrTokenMalformed means the token is not a structurally parseable instance.
	ErrTokenMalformed = errors.New("malformed token")

	// ErrTokenTampered means the signature does not match the payload.
	ErrTokenTampered = errors.New("token signature mismatch")

	// ErrTokenExpired means the check time is at or past the embedded expiry.
	ErrTokenExpired = errors.New("token expired")
)
