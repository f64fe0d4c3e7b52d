package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title         string    `gorm:"not null"`
	Description   string
	Location      string
	StartDate     time.Time `gorm:"not null;index"`
	EndDate       *time.Time
	CreatedByID   uuid.UUID `gorm:"not null"`
	CoverImageURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Связи
	CreatedBy User   `gorm:"foreignKey:CreatedByID"`
	Attendees []User `gorm:"many2many:event_attendees"`
}
