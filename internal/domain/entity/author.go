package entity

import (
	"time"

	"github.com/google/uuid"
)

// Author represents a book author. An author owns zero or more books;
// a book cannot reference an author that does not exist.
type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`    // The author's display name; unique across the system.
	Country   string    `json:"country"` // The author's country of origin.
	Bio       string    `json:"bio"`     // A short biography.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
