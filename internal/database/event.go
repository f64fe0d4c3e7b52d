package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/campus-connect/internal/models"
)

func (d *Database) SaveEvent(event *models.Event) error {
	return d.db.Create(event).Error
}

func (d *Database) GetEvent(id string) (*models.Event, error) {
	var event models.Event
	err := d.db.
		Preload("CreatedBy").
		Preload("Attendees").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// UpcomingEvents отдает события по дате начала, не больше limit
func (d *Database) UpcomingEvents(limit int) ([]models.Event, error) {
	var events []models.Event
	err := d.db.
		Order("start_date ASC").
		Limit(limit).
		Preload("CreatedBy").
		Preload("Attendees").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ToggleEventAttendance переключает участие по текущему состоянию join-таблицы
func (d *Database) ToggleEventAttendance(eventID, userID uuid.UUID) (int, bool, error) {
	var event models.Event
	if err := d.db.First(&event, "id = ?", eventID).Error; err != nil {
		return 0, false, err
	}

	var user models.User
	if err := d.db.First(&user, "id = ?", userID).Error; err != nil {
		return 0, false, err
	}

	var count int64
	if err := d.db.Table("event_attendees").
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error; err != nil {
		return 0, false, err
	}

	joined := count == 0
	if joined {
		if err := d.db.Model(&event).Association("Attendees").Append(&user); err != nil {
			return 0, false, err
		}
	} else {
		if err := d.db.Model(&event).Association("Attendees").Delete(&user); err != nil {
			return 0, false, err
		}
	}

	attendeesCount := int(d.db.Model(&event).Association("Attendees").Count())
	return attendeesCount, joined, nil
}
