// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for like persistence.
var (
	// ErrLikeNotFound is returned when no like exists for a (user, book) pair.
	ErrLikeNotFound = errors.New("like not found")
	// ErrDuplicateLike is returned when the (user, book) pair is already liked.
	ErrDuplicateLike = errors.New("book already liked by this user")
)

// LikeRepository defines the operations for the user↔book like relation.
type LikeRepository interface {
	// Create persists a new like. Returns ErrDuplicateLike when the pair already exists.
	Create(ctx context.Context, like *entity.Like) error

	// Find retrieves a like by its (user, book) pair.
	Find(ctx context.Context, userID, bookID uuid.UUID) (*entity.Like, error)

	// FindByBook retrieves every like for a book, newest first.
	FindByBook(ctx context.Context, bookID uuid.UUID) ([]*entity.Like, error)
}
