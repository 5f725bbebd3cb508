package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a saved link owned by exactly one user. OwnerID is set at
// creation and never changes; every read-by-id, update and delete must verify
// the caller's identity against it.
type Bookmark struct {
	ID          uuid.UUID // The unique identifier for the bookmark.
	OwnerID     uuid.UUID // The user that owns this bookmark.
	Title       string    // Short human-readable label.
	Link        string    // The bookmarked URI.
	Description string    // Optional free-form notes.
	CreatedAt   time.Time // Timestamp of when this bookmark was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this bookmark.
}
