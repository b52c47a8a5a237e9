// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record behind every credential in the system.
// Email is unique and stored lower-cased; PasswordHash holds the bcrypt
// digest and is never empty for a persisted account.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // Login identifier, unique, normalized to lower case.
	PasswordHash string    // Salted one-way digest of the password. Never the plaintext.
	FullName     string    // Display name, optional.
	Active       bool      // Deactivated accounts fail authentication even with a valid token.
	Admin        bool      // Admins bypass ownership checks on mutations.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// CanMutate is the authorization decision for resource mutations:
// admins may mutate anything, everyone else only what they own.
// Pure function of its inputs; callers must check resource existence first.
func (a *Account) CanMutate(ownerID uuid.UUID) bool {
	return a.Admin || a.ID == ownerID
}
