package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthorModel mirrors the 'authors' table.
type AuthorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	Country   string    `gorm:"type:varchar(100)"`
	Bio       string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Books []BookModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (AuthorModel) TableName() string {
	return "authors"
}
