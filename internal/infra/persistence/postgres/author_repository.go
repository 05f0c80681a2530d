package postgres

import (
	"context"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authorRepository implements the domain's AuthorRepository interface using GORM.
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository is the constructor for authorRepository.
func NewAuthorRepository(db *gorm.DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

// FindAll retrieves every author, newest first.
func (repo *authorRepository) FindAll(ctx context.Context) ([]*entity.Author, error) {
	var authorModels []*model.AuthorModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&authorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	authors := make([]*entity.Author, 0, len(authorModels))
	for _, authorM := range authorModels {
		authors = append(authors, toAuthorDomain(authorM))
	}

	return authors, nil
}

// FindByID retrieves a single author by their unique ID.
func (repo *authorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	var authorM model.AuthorModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&authorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author by id")
	}

	return toAuthorDomain(&authorM), nil
}

// Create persists a new author entity to the database.
func (repo *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	authorM := fromAuthorDomain(author)

	if err := repo.db.WithContext(ctx).Create(authorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAuthorAlreadyExists.WrapMessage("author name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required author information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create author")
	}

	author.ID = authorM.ID
	author.CreatedAt = authorM.CreatedAt
	author.UpdatedAt = authorM.UpdatedAt

	return nil
}

// Update modifies an existing author entity in the database.
func (repo *authorRepository) Update(ctx context.Context, author *entity.Author) error {
	authorM := fromAuthorDomain(author)

	result := repo.db.WithContext(ctx).
		Model(&model.AuthorModel{}).
		Where("id = ?", author.ID).
		Updates(map[string]any{
			"name":    authorM.Name,
			"country": authorM.Country,
			"bio":     authorM.Bio,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrAuthorAlreadyExists.WrapMessage("author name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update author")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// Delete removes an author by ID. Deletion fails with a foreign key violation
// while books still reference the author.
func (repo *authorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AuthorModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("author still has books")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete author")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// toAuthorDomain converts a GORM AuthorModel to a domain Author entity.
func toAuthorDomain(data *model.AuthorModel) *entity.Author {
	if data == nil {
		return nil
	}

	return &entity.Author{
		ID:        data.ID,
		Name:      data.Name,
		Country:   data.Country,
		Bio:       data.Bio,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAuthorDomain converts a domain Author entity to a GORM AuthorModel.
func fromAuthorDomain(data *entity.Author) *model.AuthorModel {
	if data == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:      data.ID,
		Name:    data.Name,
		Country: data.Country,
		Bio:     data.Bio,
	}
}
