package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the public-facing metadata of one account. The
// display name is copied into posts and comments at write time; later
// profile edits never touch those snapshots.
type Profile struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName *string   `json:"display_name"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}
