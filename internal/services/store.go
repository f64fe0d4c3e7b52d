package services

import (
	"github.com/google/uuid"
	"github.com/thereayou/campus-connect/internal/models"
)

// Обработчики зависят от узких интерфейсов хранилища, конкретная
// реализация живет в internal/database

type UserStore interface {
	SaveUser(user *models.User) error
	UpdateUser(user *models.User) error
	GetUser(id string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
}

type PostStore interface {
	SavePost(post *models.Post) error
	GetPost(id string) (*models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id string) error
	LatestPosts(limit int) ([]models.Post, error)
	TogglePostLike(postID, userID uuid.UUID) (*models.Post, bool, error)
	AddComment(postID, authorID uuid.UUID, content string) (*models.Post, error)
}

type ClubStore interface {
	CreateClub(club *models.Club, creatorID uuid.UUID) error
	GetClub(id string) (*models.Club, error)
	ListClubs(limit int) ([]models.Club, error)
	ToggleClubMembership(clubID, userID uuid.UUID) (int, bool, error)
}

type EventStore interface {
	SaveEvent(event *models.Event) error
	GetEvent(id string) (*models.Event, error)
	UpcomingEvents(limit int) ([]models.Event, error)
	ToggleEventAttendance(eventID, userID uuid.UUID) (int, bool, error)
}
