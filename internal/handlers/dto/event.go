package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	StartDate     time.Time  `json:"start_date" binding:"required"`
	EndDate       *time.Time `json:"end_date"`
	CoverImageURL string     `json:"cover_image_url"`
}

type EventResponse struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	Location      string      `json:"location,omitempty"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       *time.Time  `json:"end_date,omitempty"`
	CreatedBy     UserInfo    `json:"created_by"`
	Attendees     []uuid.UUID `json:"attendees"`
	CoverImageURL string      `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
