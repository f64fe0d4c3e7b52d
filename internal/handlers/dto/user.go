package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Name      *string   `json:"name"`
	College   *string   `json:"college"`
	Year      *string   `json:"year"`
	Skills    *[]string `json:"skills"`
	AvatarURL *string   `json:"avatar_url"`
}

type ClubRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UserResponse — профиль без хэша пароля
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	College   string    `json:"college,omitempty"`
	Year      string    `json:"year,omitempty"`
	Skills    []string  `json:"skills"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Clubs     []ClubRef `json:"clubs"`
	CreatedAt time.Time `json:"created_at"`
}
