package models

import (
	"time"

	"github.com/google/uuid"
)

// Club использует ту же join-таблицу club_members, что и User.Clubs,
// поэтому членство всегда согласовано с обеих сторон
type Club struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string    `gorm:"not null;index"`
	Description   string
	CoverImageURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Связи
	Admins  []User `gorm:"many2many:club_admins"`
	Members []User `gorm:"many2many:club_members"`
}
