package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is the join entity between users and books. The (UserID, BookID) pair
// is unique: a user may like a given book at most once.
type Like struct {
	UserID    uuid.UUID `json:"user_id"`
	BookID    uuid.UUID `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
}
