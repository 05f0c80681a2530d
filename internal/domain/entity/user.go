// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a single account.
// The password hash lives on the associated Credential, never on the user itself,
// so a User can be returned to callers without leaking secret material.
type User struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the user.
	Email     string    `json:"email"`      // The user's login identifier; unique across the system.
	Name      string    `json:"name"`       // The user's display name.
	Role      Role      `json:"role"`       // The user's role, controlling access to admin-gated operations.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification to this account.
}
