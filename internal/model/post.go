package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID         int64     `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	ImageURL   *string   `json:"image_url"`
	ReadTime   string    `json:"read_time"`
	CreatedAt  time.Time `json:"created_at"`
}

// FullPost is a post together with its view count, which lives outside
// the posts table.
type FullPost struct {
	Post  Post  `json:"post"`
	Views int64 `json:"views"`
}
