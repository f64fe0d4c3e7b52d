package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/campus-connect/internal/models"
	"gorm.io/gorm"
)

// CreateClub создает клуб, создатель становится единственным админом и участником
func (d *Database) CreateClub(club *models.Club, creatorID uuid.UUID) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var creator models.User
		if err := tx.First(&creator, "id = ?", creatorID).Error; err != nil {
			return err
		}

		if err := tx.Create(club).Error; err != nil {
			return err
		}

		if err := tx.Model(club).Association("Admins").Append(&creator); err != nil {
			return err
		}

		// club_members общая для User.Clubs, так что клуб сразу виден в профиле
		return tx.Model(club).Association("Members").Append(&creator)
	})
}

func (d *Database) GetClub(id string) (*models.Club, error) {
	var club models.Club
	err := d.db.Preload("Admins").Preload("Members").First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (d *Database) ListClubs(limit int) ([]models.Club, error) {
	var clubs []models.Club
	err := d.db.
		Preload("Admins").
		Preload("Members").
		Limit(limit).
		Find(&clubs).Error
	if err != nil {
		return nil, err
	}
	return clubs, nil
}

// ToggleClubMembership переключает членство по текущему состоянию join-таблицы.
// Обе стороны (members клуба и clubs пользователя) живут в одной таблице,
// поэтому расходиться им некуда.
func (d *Database) ToggleClubMembership(clubID, userID uuid.UUID) (int, bool, error) {
	var joined bool
	var membersCount int

	err := d.db.Transaction(func(tx *gorm.DB) error {
		var club models.Club
		if err := tx.First(&club, "id = ?", clubID).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Table("club_members").
			Where("club_id = ? AND user_id = ?", clubID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		joined = count == 0
		if joined {
			if err := tx.Model(&club).Association("Members").Append(&user); err != nil {
				return err
			}
		} else {
			if err := tx.Model(&club).Association("Members").Delete(&user); err != nil {
				return err
			}
		}

		membersCount = int(tx.Model(&club).Association("Members").Count())
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return membersCount, joined, nil
}
