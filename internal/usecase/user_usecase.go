package usecase

import (
	"context"

	"linkmark/internal/domain/entity"

	"github.com/google/uuid"
)

// EditUserInput defines a partial update to the caller's own profile. Nil
// fields are left unchanged.
type EditUserInput struct {
	Email *string
	Name  *string
}

// UserUsecase defines the interface for profile operations on the
// authenticated user.
type UserUsecase interface {
	// GetMe returns the caller's own account.
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// EditUser applies a partial update to the caller's own account. Changing
	// the email to one already registered fails with
	// domainerrors.ErrCredentialsTaken.
	EditUser(ctx context.Context, userID uuid.UUID, input *EditUserInput) (*entity.User, error)
}
