package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClubRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	CoverImageURL string `json:"cover_image_url"`
}

type ClubResponse struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	CoverImageURL string      `json:"cover_image_url,omitempty"`
	Admins        []uuid.UUID `json:"admins"`
	Members       []UserInfo  `json:"members"`
	CreatedAt     time.Time   `json:"created_at"`
}
