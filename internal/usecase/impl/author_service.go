package impl

import (
	"context"
	"log/slog"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authorService implements the AuthorUsecase interface.
type authorService struct {
	authorRepo repository.AuthorRepository
	logger     *slog.Logger
}

// AuthorServiceParams holds dependencies for authorService, injected by Fx.
type AuthorServiceParams struct {
	fx.In

	AuthorRepo repository.AuthorRepository
	Logger     *slog.Logger
}

// NewAuthorService is the constructor for authorService.
func NewAuthorService(params AuthorServiceParams) usecase.AuthorUsecase {
	return &authorService{
		authorRepo: params.AuthorRepo,
		logger:     params.Logger,
	}
}

func (srv *authorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAuthors retrieves every author.
func (srv *authorService) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := srv.authorRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list authors", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list authors")
	}

	return authors, nil
}

// GetAuthor retrieves a single author by ID.
func (srv *authorService) GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	author, err := srv.authorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAuthorNotFound, "author not found")
		}
		srv.log(ctx).Error("Failed to get author", slog.Any("authorID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get author")
	}

	return author, nil
}

// CreateAuthor registers a new author. Author names are unique; the repository
// translates the constraint violation into ErrAuthorAlreadyExists.
func (srv *authorService) CreateAuthor(ctx context.Context, input *usecase.CreateAuthorInput) (*entity.Author, error) {
	srv.log(ctx).Info("Creating author", slog.String("name", input.Name))

	newAuthor := &entity.Author{
		Name:    input.Name,
		Country: input.Country,
		Bio:     input.Bio,
	}

	if err := srv.authorRepo.Create(ctx, newAuthor); err != nil {
		srv.log(ctx).Warn("Failed to create author", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create author")
	}

	return newAuthor, nil
}

// UpdateAuthor applies a partial update to an existing author.
func (srv *authorService) UpdateAuthor(ctx context.Context, id uuid.UUID, input *usecase.UpdateAuthorInput) (*entity.Author, error) {
	author, err := srv.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		author.Name = *input.Name
	}
	if input.Country != nil {
		author.Country = *input.Country
	}
	if input.Bio != nil {
		author.Bio = *input.Bio
	}

	if err := srv.authorRepo.Update(ctx, author); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAuthorNotFound, "author not found")
		}
		srv.log(ctx).Warn("Failed to update author", slog.Any("authorID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update author")
	}

	// Re-read so the caller sees the persisted timestamps.
	return srv.GetAuthor(ctx, id)
}

// DeleteAuthor removes an author by ID.
func (srv *authorService) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting author", slog.Any("authorID", id))

	if err := srv.authorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return errors.Wrap(domainerrors.ErrAuthorNotFound, "author not found")
		}
		srv.log(ctx).Warn("Failed to delete author", slog.Any("authorID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete author")
	}

	return nil
}
