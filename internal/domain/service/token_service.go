package service

import (
	"linkmark/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failure kinds. Callers collapse all three to the same
// user-facing Unauthorized; the distinction exists for logging only.
var (
	// ErrTokenMalformed is returned when the token is not a structurally valid JWT.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenSignatureInvalid is returned when the token signature does not verify.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims defines the custom claims carried inside issued access tokens.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// self-contained access tokens. Issue and Verify are pure and cheap; tokens
// expire after a fixed TTL and are never revoked early.
type TokenService interface {
	// Issue creates a signed access token encoding the user's identity.
	Issue(userID uuid.UUID, email string) (string, error)

	// Verify checks the token's signature and then its expiry, returning the
	// embedded claims on success. Failures map onto ErrTokenMalformed,
	// ErrTokenSignatureInvalid or ErrTokenExpired.
	Verify(tokenString string) (*Claims, error)
}
