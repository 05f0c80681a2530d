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

// likeRepository implements the domain's LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Create persists a new like. The composite primary key on (user_id, book_id)
// turns a repeated like into a unique constraint violation.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLikeReferenceInvalid.WrapMessage("like references unknown user or book")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Find retrieves a like by its (user, book) pair.
func (repo *likeRepository) Find(ctx context.Context, userID, bookID uuid.UUID) (*entity.Like, error) {
	var likeM model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like")
	}

	return toLikeDomain(&likeM), nil
}

// FindByBook retrieves every like for a book, newest first.
func (repo *likeRepository) FindByBook(ctx context.Context, bookID uuid.UUID) ([]*entity.Like, error) {
	var likeModels []*model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("created_at DESC").
		Find(&likeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes for book")
	}

	likes := make([]*entity.Like, 0, len(likeModels))
	for _, likeM := range likeModels {
		likes = append(likes, toLikeDomain(likeM))
	}

	return likes, nil
}

// toLikeDomain converts a GORM LikeModel to a domain Like entity.
func toLikeDomain(data *model.LikeModel) *entity.Like {
	if data == nil {
		return nil
	}

	return &entity.Like{
		UserID:    data.UserID,
		BookID:    data.BookID,
		CreatedAt: data.CreatedAt,
	}
}

// fromLikeDomain converts a domain Like entity to a GORM LikeModel.
func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		UserID: data.UserID,
		BookID: data.BookID,
	}
}
