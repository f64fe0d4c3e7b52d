package database

import (
	"strings"

	"github.com/thereayou/campus-connect/internal/models"
)

func (d *Database) SaveUser(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return d.db.Create(user).Error
}

func (d *Database) UpdateUser(user *models.User) error {
	return d.db.Save(user).Error
}

// GetUser возвращает пользователя вместе с его клубами
func (d *Database) GetUser(id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Preload("Clubs").First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail ищет без учета регистра: email хранится в нижнем регистре
func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	email = strings.ToLower(strings.TrimSpace(email))
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
