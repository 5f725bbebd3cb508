package impl

import (
	"context"
	"io"
	"log/slog"

	"linkmark/internal/domain/entity"
	"linkmark/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockUserRepository is a hand-written testify mock for repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// mockBookmarkRepository is a hand-written testify mock for repository.BookmarkRepository.
type mockBookmarkRepository struct {
	mock.Mock
}

func (m *mockBookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	args := m.Called(ctx, bookmark)

	return args.Error(0)
}

func (m *mockBookmarkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error) {
	args := m.Called(ctx, id)
	if bookmark, ok := args.Get(0).(*entity.Bookmark); ok {
		return bookmark, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Bookmark, error) {
	args := m.Called(ctx, ownerID)
	if bookmarks, ok := args.Get(0).([]*entity.Bookmark); ok {
		return bookmarks, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkRepository) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	args := m.Called(ctx, bookmark)

	return args.Error(0)
}

func (m *mockBookmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// mockPasswordHasher is a hand-written testify mock for service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// mockTokenService is a hand-written testify mock for service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
