package entity

import "github.com/google/uuid"

// User represents a post author. Only the display fields needed by the
// read path are carried; user management lives in the external write path.
type User struct {
	ID       uuid.UUID
	Username string
}
