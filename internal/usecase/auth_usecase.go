// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Email    string
	Password string
}

// SignInInput defines the data required to sign in to an existing account.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput returns the signed access token after a successful sign-up or sign-in.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
}

// AuthUsecase defines the interface for credential-based authentication.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// SignUp registers a new account and returns an access token for it.
	// An already-registered email fails with domainerrors.ErrCredentialsTaken.
	SignUp(ctx context.Context, input *SignUpInput) (*TokenOutput, error)

	// SignIn verifies credentials and returns a fresh access token. Unknown
	// email and wrong password are indistinguishable to the caller: both fail
	// with the same domainerrors.ErrInvalidCredentials.
	SignIn(ctx context.Context, input *SignInInput) (*TokenOutput, error)
}
