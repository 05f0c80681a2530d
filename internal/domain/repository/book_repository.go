// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	// FindAll retrieves every book with its author preloaded, newest first.
	FindAll(ctx context.Context) ([]*entity.Book, error)

	// FindByID retrieves a single book with its author preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// Create persists a new book entity to the storage.
	Create(ctx context.Context, book *entity.Book) error

	// Update modifies an existing book entity in the storage.
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes a book by ID. Returns ErrBookNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
