package impl

import (
	"context"
	"log/slog"

	deliverycontext "linkmark/internal/delivery/context"
	"linkmark/internal/domain/entity"
	domainerrors "linkmark/internal/domain/errors"
	"linkmark/internal/domain/repository"
	"linkmark/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookmarkService implements the BookmarkUsecase interface.
type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	logger       *slog.Logger
}

// BookmarkServiceParams holds dependencies for bookmarkService, injected by Fx.
type BookmarkServiceParams struct {
	fx.In

	BookmarkRepo repository.BookmarkRepository
	Logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(params BookmarkServiceParams) usecase.BookmarkUsecase {
	return &bookmarkService{
		bookmarkRepo: params.BookmarkRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new bookmark. The owner is always the caller; clients cannot
// create records on behalf of another user.
func (srv *bookmarkService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	bookmark := &entity.Bookmark{
		OwnerID:     ownerID,
		Title:       input.Title,
		Link:        input.Link,
		Description: input.Description,
	}

	if err := srv.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, errors.Wrap(err, "failed to create bookmark")
	}

	srv.log(ctx).Debug("Bookmark created", slog.Any("bookmarkID", bookmark.ID), slog.Any("ownerID", ownerID))

	return bookmark, nil
}

// GetAll returns every bookmark owned by the caller.
func (srv *bookmarkService) GetAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Bookmark, error) {
	bookmarks, err := srv.bookmarkRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, nil
}

// GetByID returns a single bookmark after verifying ownership.
func (srv *bookmarkService) GetByID(ctx context.Context, requesterID, bookmarkID uuid.UUID) (*entity.Bookmark, error) {
	return srv.loadOwned(ctx, requesterID, bookmarkID)
}

// Edit applies a partial update to a bookmark after verifying ownership.
func (srv *bookmarkService) Edit(ctx context.Context, requesterID, bookmarkID uuid.UUID, input *usecase.EditBookmarkInput) (*entity.Bookmark, error) {
	bookmark, err := srv.loadOwned(ctx, requesterID, bookmarkID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		bookmark.Title = *input.Title
	}
	if input.Link != nil {
		bookmark.Link = *input.Link
	}
	if input.Description != nil {
		bookmark.Description = *input.Description
	}

	if err := srv.bookmarkRepo.Update(ctx, bookmark); err != nil {
		return nil, errors.Wrap(err, "failed to update bookmark")
	}

	srv.log(ctx).Debug("Bookmark updated", slog.Any("bookmarkID", bookmarkID))

	return bookmark, nil
}

// Delete removes a bookmark after verifying ownership.
func (srv *bookmarkService) Delete(ctx context.Context, requesterID, bookmarkID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, requesterID, bookmarkID); err != nil {
		return err
	}

	if err := srv.bookmarkRepo.Delete(ctx, bookmarkID); err != nil {
		return errors.Wrap(err, "failed to delete bookmark")
	}

	srv.log(ctx).Debug("Bookmark deleted", slog.Any("bookmarkID", bookmarkID))

	return nil
}

// loadOwned fetches a bookmark and verifies the requester owns it. A missing
// record and a record owned by someone else fail identically with Forbidden,
// so existence never leaks to non-owners; the actual cause is logged here.
func (srv *bookmarkService) loadOwned(ctx context.Context, requesterID, bookmarkID uuid.UUID) (*entity.Bookmark, error) {
	bookmark, err := srv.bookmarkRepo.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			srv.log(ctx).Warn("Access to missing bookmark",
				slog.Any("bookmarkID", bookmarkID), slog.Any("requesterID", requesterID))

			return nil, errors.Wrap(domainerrors.ErrForbidden, "bookmark access denied")
		}

		return nil, errors.Wrap(err, "failed to find bookmark by id")
	}

	if bookmark.OwnerID != requesterID {
		srv.log(ctx).Warn("Access to bookmark by non-owner",
			slog.Any("bookmarkID", bookmarkID), slog.Any("requesterID", requesterID), slog.Any("ownerID", bookmark.OwnerID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "bookmark access denied")
	}

	return bookmark, nil
}
