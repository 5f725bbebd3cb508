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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe returns the profile of the authenticated user. A valid token naming a
// user that no longer exists yields Unauthorized rather than an internal error.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token references missing user", slog.Any("userID", userID))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// EditUser applies a partial update to the authenticated user's profile.
func (srv *userService) EditUser(ctx context.Context, userID uuid.UUID, input *usecase.EditUserInput) (*entity.User, error) {
	user, err := srv.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Profile update with taken email", slog.Any("userID", userID))

			return nil, errors.Wrap(domainerrors.ErrCredentialsTaken, "profile update failed")
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User profile updated", slog.Any("userID", userID))

	return user, nil
}
