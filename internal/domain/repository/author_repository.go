// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthorNotFound is returned when an author is not found.
var ErrAuthorNotFound = errors.New("author not found")

// AuthorRepository defines the standard operations for author persistence.
type AuthorRepository interface {
	// FindAll retrieves every author, newest first.
	FindAll(ctx context.Context) ([]*entity.Author, error)

	// FindByID retrieves a single author by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error)

	// Create persists a new author entity to the storage.
	Create(ctx context.Context, author *entity.Author) error

	// Update modifies an existing author entity in the storage.
	Update(ctx context.Context, author *entity.Author) error

	// Delete removes an author by ID. Returns ErrAuthorNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
