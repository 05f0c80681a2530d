package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a single book in the catalogue. Every book references an
// existing Author; the reference is validated at the service layer before any
// write and enforced again by the store's foreign key.
type Book struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`  // The book title; unique across the catalogue.
	Rating    int       `json:"rating"` // Reader rating on a 1..10 scale.
	Price     int       `json:"price"`  // Price in the smallest currency unit.
	AuthorID  uuid.UUID `json:"author_id"`
	Author    *Author   `json:"author,omitempty"` // Populated on reads; nil on writes.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
