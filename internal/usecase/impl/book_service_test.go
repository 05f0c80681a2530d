package impl

import (
	"context"
	"testing"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	mockRepo "shelf/internal/mocks/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookServiceFixtures struct {
	service    usecase.BookUsecase
	bookRepo   *mockRepo.MockBookRepository
	authorRepo *mockRepo.MockAuthorRepository
	userRepo   *mockRepo.MockUserRepository
	likeRepo   *mockRepo.MockLikeRepository
}

func createTestBookService(t *testing.T) bookServiceFixtures {
	bookRepo := mockRepo.NewMockBookRepository(t)
	authorRepo := mockRepo.NewMockAuthorRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)

	service := NewBookService(BookServiceParams{
		BookRepo:   bookRepo,
		AuthorRepo: authorRepo,
		UserRepo:   userRepo,
		LikeRepo:   likeRepo,
		Logger:     newDiscardLogger(),
	})

	return bookServiceFixtures{
		service:    service,
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
		userRepo:   userRepo,
		likeRepo:   likeRepo,
	}
}

func TestBookService_CreateBook_Success(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	author := &entity.Author{ID: uuid.New(), Name: "Author"}
	bookID := uuid.New()

	fixtures.authorRepo.On("FindByID", ctx, author.ID).Return(author, nil)
	fixtures.bookRepo.On("Create", ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(args mock.Arguments) {
			book := args.Get(1).(*entity.Book)
			book.ID = bookID
		}).
		Return(nil)
	fixtures.bookRepo.On("FindByID", ctx, bookID).Return(&entity.Book{
		ID:       bookID,
		Title:    "The Dispossessed",
		Rating:   5,
		Price:    420,
		AuthorID: author.ID,
		Author:   author,
	}, nil)

	book, err := fixtures.service.CreateBook(ctx, &usecase.CreateBookInput{
		Title:    "The Dispossessed",
		Rating:   5,
		Price:    420,
		AuthorID: author.ID,
	})

	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, bookID, book.ID)
	require.NotNil(t, book.Author)
	assert.Equal(t, author.ID, book.Author.ID)
}

func TestBookService_CreateBook_UnknownAuthor(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	authorID := uuid.New()
	fixtures.authorRepo.On("FindByID", ctx, authorID).Return(nil, repository.ErrAuthorNotFound)

	book, err := fixtures.service.CreateBook(ctx, &usecase.CreateBookInput{
		Title:    "Orphan Book",
		AuthorID: authorID,
	})

	require.Error(t, err)
	assert.Nil(t, book)
	// A missing author is a client error, not a conflict.
	assert.ErrorIs(t, err, domainerrors.ErrAuthorReferenceInvalid)
}

func TestBookService_CreateBook_DuplicateTitle(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	author := &entity.Author{ID: uuid.New(), Name: "Author"}

	fixtures.authorRepo.On("FindByID", ctx, author.ID).Return(author, nil)
	fixtures.bookRepo.On("Create", ctx, mock.AnythingOfType("*entity.Book")).
		Return(domainerrors.ErrBookAlreadyExists.WrapMessage("book title already exists"))

	book, err := fixtures.service.CreateBook(ctx, &usecase.CreateBookInput{
		Title:    "Taken Title",
		AuthorID: author.ID,
	})

	require.Error(t, err)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, domainerrors.ErrBookAlreadyExists)
}

func TestBookService_UpdateBook_ChangesAuthorAfterCheck(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	oldAuthorID := uuid.New()
	newAuthorID := uuid.New()
	book := &entity.Book{
		ID:       uuid.New(),
		Title:    "Some Book",
		Rating:   3,
		Price:    100,
		AuthorID: oldAuthorID,
	}

	fixtures.bookRepo.On("FindByID", ctx, book.ID).Return(book, nil)
	fixtures.authorRepo.On("FindByID", ctx, newAuthorID).
		Return(&entity.Author{ID: newAuthorID}, nil)
	fixtures.bookRepo.On("Update", ctx, mock.MatchedBy(func(updated *entity.Book) bool {
		return updated.AuthorID == newAuthorID && updated.Title == "Some Book"
	})).Return(nil)

	updated, err := fixtures.service.UpdateBook(ctx, book.ID, &usecase.UpdateBookInput{
		AuthorID: &newAuthorID,
	})

	require.NoError(t, err)
	assert.Equal(t, newAuthorID, updated.AuthorID)
}

func TestBookService_DeleteBook_NotFound(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	id := uuid.New()
	fixtures.bookRepo.On("Delete", ctx, id).Return(repository.ErrBookNotFound)

	err := fixtures.service.DeleteBook(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestBookService_LikeBook_Success(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.bookRepo.On("FindByID", ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fixtures.likeRepo.On("Find", ctx, userID, bookID).Return(nil, repository.ErrLikeNotFound)
	fixtures.likeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Like")).Return(nil)

	like, err := fixtures.service.LikeBook(ctx, userID, bookID)

	require.NoError(t, err)
	require.NotNil(t, like)
	assert.Equal(t, userID, like.UserID)
	assert.Equal(t, bookID, like.BookID)
}

func TestBookService_LikeBook_AlreadyLiked(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.bookRepo.On("FindByID", ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fixtures.likeRepo.On("Find", ctx, userID, bookID).
		Return(&entity.Like{UserID: userID, BookID: bookID}, nil)

	like, err := fixtures.service.LikeBook(ctx, userID, bookID)

	require.Error(t, err)
	assert.Nil(t, like)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyLiked)
}

func TestBookService_LikeBook_DuplicateRace(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.bookRepo.On("FindByID", ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fixtures.likeRepo.On("Find", ctx, userID, bookID).Return(nil, repository.ErrLikeNotFound)
	// Concurrent request won the insert; the store reports the duplicate.
	fixtures.likeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Like")).
		Return(repository.ErrDuplicateLike)

	like, err := fixtures.service.LikeBook(ctx, userID, bookID)

	require.Error(t, err)
	assert.Nil(t, like)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyLiked)
}

func TestBookService_LikeBook_UnknownUser(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	like, err := fixtures.service.LikeBook(ctx, userID, bookID)

	require.Error(t, err)
	assert.Nil(t, like)
	assert.ErrorIs(t, err, domainerrors.ErrLikeReferenceInvalid)
}

func TestBookService_LikeBook_UnknownBook(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.bookRepo.On("FindByID", ctx, bookID).Return(nil, repository.ErrBookNotFound)

	like, err := fixtures.service.LikeBook(ctx, userID, bookID)

	require.Error(t, err)
	assert.Nil(t, like)
	assert.ErrorIs(t, err, domainerrors.ErrLikeReferenceInvalid)
}

func TestBookService_ListBookLikes_Success(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()
	likes := []*entity.Like{
		{UserID: uuid.New(), BookID: bookID},
		{UserID: uuid.New(), BookID: bookID},
	}

	fixtures.bookRepo.On("FindByID", ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fixtures.likeRepo.On("FindByBook", ctx, bookID).Return(likes, nil)

	got, err := fixtures.service.ListBookLikes(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, likes, got)
}

func TestBookService_ListBookLikes_UnknownBook(t *testing.T) {
	fixtures := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()

	fixtures.bookRepo.On("FindByID", ctx, bookID).Return(nil, repository.ErrBookNotFound)

	likes, err := fixtures.service.ListBookLikes(ctx, bookID)

	require.Error(t, err)
	assert.Nil(t, likes)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}
