// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when no credential exists for a user.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the operations for password credential persistence.
type CredentialRepository interface {
	// Create persists a new credential for a user.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByUserID retrieves the credential belonging to the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
}
