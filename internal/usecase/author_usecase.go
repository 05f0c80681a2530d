package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAuthorInput defines the data required to create a new author.
type CreateAuthorInput struct {
	Name    string
	Country string
	Bio     string
}

// UpdateAuthorInput defines the data for a partial author update.
// Nil fields are left unchanged.
type UpdateAuthorInput struct {
	Name    *string
	Country *string
	Bio     *string
}

// AuthorUsecase defines the interface for author-related business operations.
type AuthorUsecase interface {
	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	CreateAuthor(ctx context.Context, input *CreateAuthorInput) (*entity.Author, error)
	UpdateAuthor(ctx context.Context, id uuid.UUID, input *UpdateAuthorInput) (*entity.Author, error)
	DeleteAuthor(ctx context.Context, id uuid.UUID) error
}
