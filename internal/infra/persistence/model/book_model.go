package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. AuthorID references authors.id (UUID);
// the store enforces the reference with a foreign key on top of the service-level check.
type BookModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(255);unique;not null"`
	Rating    int       `gorm:"not null;default:0"`
	Price     int       `gorm:"not null;default:0"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *AuthorModel `gorm:"foreignKey:AuthorID"`
	Likes  []LikeModel  `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// LikeModel mirrors the 'likes' join table. The composite primary key on
// (user_id, book_id) is the uniqueness constraint for the like relation.
type LikeModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
