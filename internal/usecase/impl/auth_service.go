// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "linkmark/internal/delivery/context"
	"linkmark/internal/domain/entity"
	domainerrors "linkmark/internal/domain/errors"
	"linkmark/internal/domain/repository"
	"linkmark/internal/domain/service"
	"linkmark/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It holds no mutable
// state; every call operates on data fetched fresh from the repository.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	decoyHash    string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	// Pre-computed hash checked on unknown-email sign-ins, so both failure
	// paths spend comparable time in the hasher.
	decoyHash, err := params.Hasher.Hash("linkmark-decoy-password")
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare decoy hash")
	}

	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		decoyHash:    decoyHash,
		logger:       params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account and returns an access token for it.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting sign-up", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Sign-up with already-registered email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrCredentialsTaken, "sign-up failed")
		}

		return nil, errors.Wrap(err, "failed to create user during sign-up")
	}

	accessToken, err := srv.tokenService.Issue(newUser.ID, newUser.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token during sign-up")
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", newUser.ID))

	return &usecase.TokenOutput{AccessToken: accessToken}, nil
}

// SignIn verifies credentials and returns a fresh access token. The unknown
// email and wrong password paths produce the same error kind and message, and
// both pay one hasher verification, so callers cannot probe which emails are
// registered.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(input.Password, srv.decoyHash)
			srv.log(ctx).Warn("Sign-in with unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to find user during sign-in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in with wrong password", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	accessToken, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token during sign-in")
	}

	srv.log(ctx).Debug("Sign-in completed", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: accessToken}, nil
}
