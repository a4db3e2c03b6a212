package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag represents a post tag. Tags have a many-to-many relationship with
// posts through the posts_to_tags association table.
type Tag struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
