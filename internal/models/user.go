package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	College      string
	Year         string
	Skills       []string `gorm:"serializer:json"`
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Связи
	Clubs []Club `gorm:"many2many:club_members"`
}
