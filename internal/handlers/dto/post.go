package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type UpdatePostRequest struct {
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UserInfo — безопасное для выдачи подмножество полей пользователя
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	Author    UserInfo  `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostResponse — единое представление поста: оно же уходит в HTTP-ответ,
// в кэш и в push-событие
type PostResponse struct {
	ID        uuid.UUID         `json:"id"`
	Author    UserInfo          `json:"author"`
	Content   string            `json:"content"`
	ImageURL  string            `json:"image_url,omitempty"`
	Likes     []uuid.UUID       `json:"likes"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
