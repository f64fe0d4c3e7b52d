package database

import (
	"errors"

	"github.com/thereayou/campus-connect/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает Postgres и прогоняет миграции
func Connect(dsn string) (*Database, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	// TranslateError превращает нарушения ограничений в ошибки GORM,
	// например unique violation в gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Club{},
		&models.Event{},
	)
	if err != nil {
		return nil, err
	}

	return NewDatabase(db), nil
}
