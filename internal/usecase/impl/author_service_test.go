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

type authorServiceFixtures struct {
	service    usecase.AuthorUsecase
	authorRepo *mockRepo.MockAuthorRepository
}

func createTestAuthorService(t *testing.T) authorServiceFixtures {
	authorRepo := mockRepo.NewMockAuthorRepository(t)

	service := NewAuthorService(AuthorServiceParams{
		AuthorRepo: authorRepo,
		Logger:     newDiscardLogger(),
	})

	return authorServiceFixtures{
		service:    service,
		authorRepo: authorRepo,
	}
}

func TestAuthorService_CreateAuthor_Success(t *testing.T) {
	fixtures := createTestAuthorService(t)

	ctx := context.Background()
	fixtures.authorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Author")).
		Run(func(args mock.Arguments) {
			author := args.Get(1).(*entity.Author)
			author.ID = uuid.New()
		}).
		Return(nil)

	author, err := fixtures.service.CreateAuthor(ctx, &usecase.CreateAuthorInput{
		Name:    "Ursula K. Le Guin",
		Country: "USA",
		Bio:     "Speculative fiction writer",
	})

	require.NoError(t, err)
	require.NotNil(t, author)
	assert.Equal(t, "Ursula K. Le Guin", author.Name)
	assert.NotEqual(t, uuid.Nil, author.ID)
}

func TestAuthorService_CreateAuthor_DuplicateName(t *testing.T) {
	fixtures := createTestAuthorService(t)

	ctx := context.Background()
	fixtures.authorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Author")).
		Return(domainerrors.ErrAuthorAlreadyExists.WrapMessage("author name already exists"))

	author, err := fixtures.service.CreateAuthor(ctx, &usecase.CreateAuthorInput{Name: "Taken"})

	require.Error(t, err)
	assert.Nil(t, author)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorAlreadyExists)
}

func TestAuthorService_GetAuthor_NotFound(t *testing.T) {
	fixtures := createTestAuthorService(t)

	ctx := context.Background()
	id := uuid.New()
	fixtures.authorRepo.On("FindByID", ctx, id).Return(nil, repository.ErrAuthorNotFound)

	author, err := fixtures.service.GetAuthor(ctx, id)

	require.Error(t, err)
	assert.Nil(t, author)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorNotFound)
}

func TestAuthorService_UpdateAuthor_Partial(t *testing.T) {
	fixtures := createTestAuthorService(t)

	ctx := context.Background()
	existing := &entity.Author{
		ID:      uuid.New(),
		Name:    "Old Name",
		Country: "UK",
		Bio:     "Old bio",
	}

	fixtures.authorRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

	newName := "New Name"
	fixtures.authorRepo.On("Update", ctx, mock.MatchedBy(func(author *entity.Author) bool {
		// Untouched fields survive a partial update.
		return author.Name == newName && author.Country == "UK" && author.Bio == "Old bio"
	})).Return(nil)

	author, err := fixtures.service.UpdateAuthor(ctx, existing.ID, &usecase.UpdateAuthorInput{
		Name: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, newName, author.Name)
}

func TestAuthorService_DeleteAuthor_NotFound(t *testing.T) {
	fixtures := createTestAuthorService(t)

	ctx := context.Background()
	id := uuid.New()
	fixtures.authorRepo.On("Delete", ctx, id).Return(repository.ErrAuthorNotFound)

	err := fixtures.service.DeleteAuthor(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorNotFound)
}
