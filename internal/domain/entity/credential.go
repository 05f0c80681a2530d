// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential represents the stored secret for a user's email/password login.
// Exactly one record exists per user; it is created inside the same transaction
// as the user during registration.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record itself.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	PasswordHash string    // Stores the bcrypt-hashed password; the salt is embedded in the hash.
	CreatedAt    time.Time // Timestamp of when this credential was created.
	UpdatedAt    time.Time // Timestamp of the last password change.
}
