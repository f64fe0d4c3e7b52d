package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	AuthorID  uuid.UUID `gorm:"not null;index:idx_posts_author_created"`
	Content   string
	ImageURL  string
	CreatedAt time.Time `gorm:"index:idx_posts_created,sort:desc;index:idx_posts_author_created"`
	UpdatedAt time.Time

	// Связи
	Author   User      `gorm:"foreignKey:AuthorID"`
	Likes    []User    `gorm:"many2many:post_likes"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// Comment живет только внутри поста, отдельного API у него нет
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	PostID    uuid.UUID `gorm:"not null;index"`
	AuthorID  uuid.UUID `gorm:"not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time

	Author User `gorm:"foreignKey:AuthorID"`
}
