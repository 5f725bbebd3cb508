package repository

import (
	"context"

	"linkmark/internal/domain/entity"
	"linkmark/internal/errors"

	"github.com/google/uuid"
)

// ErrBookmarkNotFound is returned when a bookmark is not found.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository defines the standard operations for bookmark persistence.
// The store performs no ownership logic; ownership checks live in the use case
// layer.
type BookmarkRepository interface {
	// Create persists a new bookmark entity to the storage.
	Create(ctx context.Context, bookmark *entity.Bookmark) error

	// FindByID retrieves a single bookmark by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error)

	// FindByOwner retrieves all bookmarks belonging to the given owner.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Bookmark, error)

	// Update modifies an existing bookmark entity in the storage.
	Update(ctx context.Context, bookmark *entity.Bookmark) error

	// Delete removes a bookmark by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
