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

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo   repository.BookRepository
	authorRepo repository.AuthorRepository
	userRepo   repository.UserRepository
	likeRepo   repository.LikeRepository
	logger     *slog.Logger
}

// BookServiceParams holds dependencies for bookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo   repository.BookRepository
	AuthorRepo repository.AuthorRepository
	UserRepo   repository.UserRepository
	LikeRepo   repository.LikeRepository
	Logger     *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		bookRepo:   params.BookRepo,
		authorRepo: params.AuthorRepo,
		userRepo:   params.UserRepo,
		likeRepo:   params.LikeRepo,
		logger:     params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBooks retrieves every book with its author.
func (srv *bookService) ListBooks(ctx context.Context) ([]*entity.Book, error) {
	books, err := srv.bookRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list books", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// GetBook retrieves a single book with its author.
func (srv *bookService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}
		srv.log(ctx).Error("Failed to get book", slog.Any("bookID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get book")
	}

	return book, nil
}

// CreateBook registers a new book. The referenced author must exist; a missing
// author is a client error, not a conflict, so it maps to ErrAuthorReferenceInvalid.
func (srv *bookService) CreateBook(ctx context.Context, input *usecase.CreateBookInput) (*entity.Book, error) {
	srv.log(ctx).Info("Creating book", slog.String("title", input.Title), slog.Any("authorID", input.AuthorID))

	if err := srv.checkAuthorExists(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	newBook := &entity.Book{
		Title:    input.Title,
		Rating:   input.Rating,
		Price:    input.Price,
		AuthorID: input.AuthorID,
	}

	if err := srv.bookRepo.Create(ctx, newBook); err != nil {
		srv.log(ctx).Warn("Failed to create book", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create book")
	}

	// Re-read so the response carries the preloaded author.
	return srv.GetBook(ctx, newBook.ID)
}

// UpdateBook applies a partial update to an existing book.
func (srv *bookService) UpdateBook(ctx context.Context, id uuid.UUID, input *usecase.UpdateBookInput) (*entity.Book, error) {
	book, err := srv.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AuthorID != nil {
		if err := srv.checkAuthorExists(ctx, *input.AuthorID); err != nil {
			return nil, err
		}
		book.AuthorID = *input.AuthorID
	}
	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Rating != nil {
		book.Rating = *input.Rating
	}
	if input.Price != nil {
		book.Price = *input.Price
	}

	if err := srv.bookRepo.Update(ctx, book); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}
		srv.log(ctx).Warn("Failed to update book", slog.Any("bookID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update book")
	}

	return srv.GetBook(ctx, id)
}

// DeleteBook removes a book by ID.
func (srv *bookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting book", slog.Any("bookID", id))

	if err := srv.bookRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}
		srv.log(ctx).Warn("Failed to delete book", slog.Any("bookID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete book")
	}

	return nil
}

// LikeBook records that a user likes a book. Both referents must exist, and a
// pair can only be liked once. The composite primary key in the store backs up
// the duplicate check against concurrent requests.
func (srv *bookService) LikeBook(ctx context.Context, userID, bookID uuid.UUID) (*entity.Like, error) {
	srv.log(ctx).Info("Liking book", slog.Any("userID", userID), slog.Any("bookID", bookID))

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrLikeReferenceInvalid.WrapMessage("user does not exist")
		}

		return nil, errors.Wrap(err, "failed to check user for like")
	}

	if _, err := srv.bookRepo.FindByID(ctx, bookID); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrLikeReferenceInvalid.WrapMessage("book does not exist")
		}

		return nil, errors.Wrap(err, "failed to check book for like")
	}

	if _, err := srv.likeRepo.Find(ctx, userID, bookID); err == nil {
		return nil, errors.Wrap(domainerrors.ErrAlreadyLiked, "book already liked")
	} else if !errors.Is(err, repository.ErrLikeNotFound) {
		return nil, errors.Wrap(err, "failed to check existing like")
	}

	newLike := &entity.Like{
		UserID: userID,
		BookID: bookID,
	}
	if err := srv.likeRepo.Create(ctx, newLike); err != nil {
		if errors.Is(err, repository.ErrDuplicateLike) {
			return nil, errors.Wrap(domainerrors.ErrAlreadyLiked, "book already liked")
		}
		srv.log(ctx).Warn("Failed to create like", slog.Any("userID", userID), slog.Any("bookID", bookID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create like")
	}

	return newLike, nil
}

// ListBookLikes returns every like recorded for a book, newest first.
func (srv *bookService) ListBookLikes(ctx context.Context, bookID uuid.UUID) ([]*entity.Like, error) {
	if _, err := srv.bookRepo.FindByID(ctx, bookID); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}

		return nil, errors.Wrap(err, "failed to check book for likes")
	}

	likes, err := srv.likeRepo.FindByBook(ctx, bookID)
	if err != nil {
		srv.log(ctx).Warn("Failed to list likes", slog.Any("bookID", bookID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list likes")
	}

	return likes, nil
}

func (srv *bookService) checkAuthorExists(ctx context.Context, authorID uuid.UUID) error {
	if _, err := srv.authorRepo.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return domainerrors.ErrAuthorReferenceInvalid.WrapMessage("author does not exist")
		}

		return errors.Wrap(err, "failed to check author")
	}

	return nil
}
