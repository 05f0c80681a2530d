package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookInput defines the data required to create a new book.
type CreateBookInput struct {
	Title    string
	Rating   int
	Price    int
	AuthorID uuid.UUID
}

// UpdateBookInput defines the data for a partial book update.
// Nil fields are left unchanged.
type UpdateBookInput struct {
	Title    *string
	Rating   *int
	Price    *int
	AuthorID *uuid.UUID
}

// BookUsecase defines the interface for book-related business operations,
// including the user↔book like relation.
type BookUsecase interface {
	ListBooks(ctx context.Context) ([]*entity.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	CreateBook(ctx context.Context, input *CreateBookInput) (*entity.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, input *UpdateBookInput) (*entity.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	LikeBook(ctx context.Context, userID, bookID uuid.UUID) (*entity.Like, error)
	ListBookLikes(ctx context.Context, bookID uuid.UUID) ([]*entity.Like, error)
}
