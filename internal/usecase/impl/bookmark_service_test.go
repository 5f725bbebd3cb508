package impl

import (
	"context"
	"testing"

	"linkmark/internal/domain/entity"
	domainerrors "linkmark/internal/domain/errors"
	"linkmark/internal/domain/repository"
	"linkmark/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookmarkServiceFixtures holds all test dependencies for bookmark service tests.
type bookmarkServiceFixtures struct {
	service      usecase.BookmarkUsecase
	bookmarkRepo *mockBookmarkRepository
}

func createTestBookmarkService(t *testing.T) bookmarkServiceFixtures {
	bookmarkRepo := &mockBookmarkRepository{}
	service := NewBookmarkService(BookmarkServiceParams{
		BookmarkRepo: bookmarkRepo,
		Logger:       newDiscardLogger(),
	})

	t.Cleanup(func() {
		bookmarkRepo.AssertExpectations(t)
	})

	return bookmarkServiceFixtures{
		service:      service,
		bookmarkRepo: bookmarkRepo,
	}
}

func TestBookmarkService_Create_Success(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateBookmarkInput{
		Title:       "Go blog",
		Link:        "https://go.dev/blog",
		Description: "release notes and design posts",
	}

	fx.bookmarkRepo.On("Create", ctx, mock.AnythingOfType("*entity.Bookmark")).
		Run(func(args mock.Arguments) {
			bookmark := args.Get(1).(*entity.Bookmark)
			bookmark.ID = uuid.New()
		}).
		Return(nil).Once()

	bookmark, err := fx.service.Create(ctx, ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, ownerID, bookmark.OwnerID)
	assert.Equal(t, "Go blog", bookmark.Title)
	assert.Equal(t, "https://go.dev/blog", bookmark.Link)
	assert.Equal(t, "release notes and design posts", bookmark.Description)
	assert.NotEqual(t, uuid.Nil, bookmark.ID)
}

func TestBookmarkService_GetAll_OnlyOwnRecords(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owned := []*entity.Bookmark{
		{ID: uuid.New(), OwnerID: ownerID, Title: "first", Link: "https://example.com/1"},
		{ID: uuid.New(), OwnerID: ownerID, Title: "second", Link: "https://example.com/2"},
	}

	fx.bookmarkRepo.On("FindByOwner", ctx, ownerID).Return(owned, nil).Once()

	bookmarks, err := fx.service.GetAll(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, bookmarks, 2)
	for _, bookmark := range bookmarks {
		assert.Equal(t, ownerID, bookmark.OwnerID)
	}
}

func TestBookmarkService_GetAll_Empty(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.bookmarkRepo.On("FindByOwner", ctx, ownerID).Return([]*entity.Bookmark{}, nil).Once()

	bookmarks, err := fx.service.GetAll(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestBookmarkService_GetByID_Owner(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	bookmarkID := uuid.New()
	stored := &entity.Bookmark{ID: bookmarkID, OwnerID: ownerID, Title: "mine", Link: "https://example.com"}

	fx.bookmarkRepo.On("FindByID", ctx, bookmarkID).Return(stored, nil).Once()

	bookmark, err := fx.service.GetByID(ctx, ownerID, bookmarkID)
	require.NoError(t, err)
	assert.Equal(t, bookmarkID, bookmark.ID)
}

func TestBookmarkService_GetByID_NotOwner(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	bookmarkID := uuid.New()
	stored := &entity.Bookmark{ID: bookmarkID, OwnerID: uuid.New(), Title: "theirs", Link: "https://example.com"}

	fx.bookmarkRepo.On("FindByID", ctx, bookmarkID).Return(stored, nil).Once()

	bookmark, err := fx.service.GetByID(ctx, uuid.New(), bookmarkID)
	require.Error(t, err)
	assert.Nil(t, bookmark)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBookmarkService_GetByID_Missing(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	bookmarkID := uuid.New()

	fx.bookmarkRepo.On("FindByID", ctx, bookmarkID).
		Return(nil, repository.ErrBookmarkNotFound).Once()

	bookmark, err := fx.service.GetByID(ctx, uuid.New(), bookmarkID)
	require.Error(t, err)
	assert.Nil(t, bookmark)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

// Missing records and records owned by someone else must fail the same way.
func TestBookmarkService_GetByID_MissingAndForeignLookIdentical(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	missingID := uuid.New()
	foreignID := uuid.New()
	foreign := &entity.Bookmark{ID: foreignID, OwnerID: uuid.New(), Title: "theirs", Link: "https://example.com"}

	fx.bookmarkRepo.On("FindByID", ctx, missingID).
		Return(nil, repository.ErrBookmarkNotFound).Once()
	fx.bookmarkRepo.On("FindByID", ctx, foreignID).Return(foreign, nil).Once()

	_, missingErr := fx.service.GetByID(ctx, requesterID, missingID)
	_, foreignErr := fx.service.GetByID(ctx, requesterID, foreignID)

	var missingApp domainerrors.AppError
	var foreignApp domainerrors.AppError
	require.True(t, errors.As(missingErr, &missingApp))
	require.True(t, errors.As(foreignErr, &foreignApp))
	assert.Equal(t, missingApp.ErrorCode(), foreignApp.ErrorCode())
	assert.Equal(t, missingApp.Message(), foreignApp.Message())
	assert.Equal(t, missingApp.HTTPCode(), foreignApp.HTTPCode())
}

func TestBookmarkService_Edit_PartialUpdate(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	bookmarkID := uuid.New()
	stored := &entity.Bookmark{
		ID:          bookmarkID,
		OwnerID:     ownerID,
		Title:       "old title",
		Link:        "https://example.com/old",
		Description: "old description",
	}

	newTitle := "new title"

	fx.bookmarkRepo.On("FindByID", ctx, bookmarkID).Return(stored, nil).Once()
	fx.bookmarkRepo.On("Update", ctx, mock.AnythingOfType("*entity.Bookmark")).
		Return(nil).Once()

	bookmark, err := fx.service.Edit(ctx, ownerID, bookmarkID, &usecase.EditBookmarkInput{
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", bookmark.Title)
	assert.Equal(t, "https://example.com/old", bookmark.Link)
	assert.Equal(t, "old description", bookmark.Description)
}

func TestBookmarkService_Edit_NotOwner(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	bookmarkID := uuid.New()
	stored := &entity.Bookmark{ID: bookmarkID, OwnerID: uuid.New(), Title: "theirs", Link: "https://example.com"}

	newTitle := "hijacked"

	fx.bookmarkRepo.On("FindByID", ctx, bookmarkID).Return(stored, nil).Once()

	bookmark, err := fx.service.Edit(ctx, uuid.New(), bookmarkID, &usecase.EditBookmarkInput{
		Title: &newTitle,
	})
	require.Error(t, err)
	assert.Nil(t, bookmark)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	fx.bookmarkRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBookmarkService_Delete_Owner(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	bookmarkID := uuid.New()
	stored := &entity.Bookmark{ID: bookmarkID, OwnerID: ownerID, Title: "mine", Link: "https://example.com"}

	fx.bookmarkRepo.On("FindByID", ctx, bookmarkID).Return(stored, nil).Once()
	fx.bookmarkRepo.On("Delete", ctx, bookmarkID).Return(nil).Once()

	err := fx.service.Delete(ctx, ownerID, bookmarkID)
	require.NoError(t, err)
}

func TestBookmarkService_Delete_NotOwner(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	bookmarkID := uuid.New()
	stored := &entity.Bookmark{ID: bookmarkID, OwnerID: uuid.New(), Title: "theirs", Link: "https://example.com"}

	fx.bookmarkRepo.On("FindByID", ctx, bookmarkID).Return(stored, nil).Once()

	err := fx.service.Delete(ctx, uuid.New(), bookmarkID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	fx.bookmarkRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBookmarkService_Delete_ThenGetYieldsForbidden(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	bookmarkID := uuid.New()
	stored := &entity.Bookmark{ID: bookmarkID, OwnerID: ownerID, Title: "mine", Link: "https://example.com"}

	fx.bookmarkRepo.On("FindByID", ctx, bookmarkID).Return(stored, nil).Once()
	fx.bookmarkRepo.On("Delete", ctx, bookmarkID).Return(nil).Once()

	require.NoError(t, fx.service.Delete(ctx, ownerID, bookmarkID))

	fx.bookmarkRepo.On("FindByID", ctx, bookmarkID).
		Return(nil, repository.ErrBookmarkNotFound).Once()

	_, err := fx.service.GetByID(ctx, ownerID, bookmarkID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
