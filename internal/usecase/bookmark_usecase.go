package usecase

import (
	"context"

	"linkmark/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookmarkInput defines the data required to create a bookmark.
type CreateBookmarkInput struct {
	Title       string
	Link        string
	Description string
}

// EditBookmarkInput defines a partial update to a bookmark. Nil fields are
// left unchanged.
type EditBookmarkInput struct {
	Title       *string
	Link        *string
	Description *string
}

// BookmarkUsecase defines the interface for ownership-checked bookmark operations.
// Create and GetAll are scoped to the caller's identity by construction; every
// by-id operation verifies the caller owns the target record first, and a
// missing record behaves identically to a record owned by someone else.
type BookmarkUsecase interface {
	// Create stores a new bookmark owned by the caller.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateBookmarkInput) (*entity.Bookmark, error)

	// GetAll returns every bookmark owned by the caller.
	GetAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Bookmark, error)

	// GetByID returns a single bookmark after verifying ownership.
	GetByID(ctx context.Context, requesterID, bookmarkID uuid.UUID) (*entity.Bookmark, error)

	// Edit applies a partial update to a bookmark after verifying ownership.
	Edit(ctx context.Context, requesterID, bookmarkID uuid.UUID, input *EditBookmarkInput) (*entity.Bookmark, error)

	// Delete removes a bookmark after verifying ownership.
	Delete(ctx context.Context, requesterID, bookmarkID uuid.UUID) error
}
