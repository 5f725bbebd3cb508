package postgres

import (
	"context"

	"linkmark/internal/domain/entity"
	domainerrors "linkmark/internal/domain/errors"
	"linkmark/internal/domain/repository"
	"linkmark/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookmarkRepository implements the repository.BookmarkRepository interface using GORM.
// It performs no ownership checks; those belong to the use case layer.
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create persists a new bookmark entity to the database.
func (repo *bookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Create(bookmarkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required bookmark information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookmark")
	}

	bookmark.ID = bookmarkM.ID
	bookmark.CreatedAt = bookmarkM.CreatedAt
	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// FindByID retrieves a single bookmark by its unique ID.
func (repo *bookmarkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel
	if err := repo.db.WithContext(ctx).First(&bookmarkM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find bookmark by id")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// FindByOwner retrieves all bookmarks belonging to the given owner, newest first.
func (repo *bookmarkRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Bookmark, error) {
	var bookmarkModels []model.BookmarkModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&bookmarkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookmarks by owner")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(bookmarkModels))
	for i := range bookmarkModels {
		bookmarks = append(bookmarks, toBookmarkDomain(&bookmarkModels[i]))
	}

	return bookmarks, nil
}

// Update modifies an existing bookmark entity in the database.
func (repo *bookmarkRepository) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Save(bookmarkM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update bookmark")
	}

	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// Delete removes a bookmark by its unique ID.
func (repo *bookmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookmarkModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBookmarkDomain(data *model.BookmarkModel) *entity.Bookmark {
	if data == nil {
		return nil
	}

	return &entity.Bookmark{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Link:        data.Link,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBookmarkDomain(data *entity.Bookmark) *model.BookmarkModel {
	if data == nil {
		return nil
	}

	return &model.BookmarkModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Link:        data.Link,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
