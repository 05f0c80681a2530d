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

// bookRepository implements the domain's BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// FindAll retrieves every book with its author preloaded, newest first.
func (repo *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	var bookModels []*model.BookModel
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// FindByID retrieves a single book with its author preloaded.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// Create persists a new book entity to the database.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBookAlreadyExists.WrapMessage("book title already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAuthorReferenceInvalid.WrapMessage("book references unknown author")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// Update modifies an existing book entity in the database.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":     bookM.Title,
			"rating":    bookM.Rating,
			"price":     bookM.Price,
			"author_id": bookM.AuthorID,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrBookAlreadyExists.WrapMessage("book title already exists")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrAuthorReferenceInvalid.WrapMessage("book references unknown author")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete removes a book by ID. The database cascades the removal of the
// book's likes via foreign key constraints.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:        data.ID,
		Title:     data.Title,
		Rating:    data.Rating,
		Price:     data.Price,
		AuthorID:  data.AuthorID,
		Author:    toAuthorDomain(data.Author),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel.
// The Author association is intentionally left nil so GORM never upserts authors
// as a side effect of writing books.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:       data.ID,
		Title:    data.Title,
		Rating:   data.Rating,
		Price:    data.Price,
		AuthorID: data.AuthorID,
	}
}
