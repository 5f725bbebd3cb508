// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account identified by a unique email address.
// PasswordHash stays inside the domain and persistence layers; the delivery
// layer maps User to response DTOs that omit it.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's login identifier, unique across all users.
	Name         string    // Optional display name.
	PasswordHash string    // Salted argon2id hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
