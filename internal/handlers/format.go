package handlers

import (
	"errors"

	"github.com/google/uuid"
	"github.com/thereayou/campus-connect/internal/handlers/dto"
	"github.com/thereayou/campus-connect/internal/models"
	"github.com/thereayou/campus-connect/pkg/httperr"
	"gorm.io/gorm"
)

// notFoundOr подменяет "запись не найдена" на клиентскую 404,
// остальные ошибки уходят в централизованный обработчик как есть
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFound(message)
	}
	return err
}

func formatUserInfo(u *models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}

// formatPostResponse собирает полное представление поста: автор, лайки
// и комментарии с их авторами
func formatPostResponse(post *models.Post) dto.PostResponse {
	likes := make([]uuid.UUID, len(post.Likes))
	for i, u := range post.Likes {
		likes[i] = u.ID
	}

	comments := make([]dto.CommentResponse, len(post.Comments))
	for i, cm := range post.Comments {
		comments[i] = dto.CommentResponse{
			ID:        cm.ID,
			Author:    formatUserInfo(&cm.Author),
			Content:   cm.Content,
			CreatedAt: cm.CreatedAt,
		}
	}

	return dto.PostResponse{
		ID:        post.ID,
		Author:    formatUserInfo(&post.Author),
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Likes:     likes,
		Comments:  comments,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func formatClubResponse(club *models.Club) dto.ClubResponse {
	admins := make([]uuid.UUID, len(club.Admins))
	for i, u := range club.Admins {
		admins[i] = u.ID
	}

	members := make([]dto.UserInfo, len(club.Members))
	for i, u := range club.Members {
		members[i] = formatUserInfo(&u)
	}

	return dto.ClubResponse{
		ID:            club.ID,
		Name:          club.Name,
		Description:   club.Description,
		CoverImageURL: club.CoverImageURL,
		Admins:        admins,
		Members:       members,
		CreatedAt:     club.CreatedAt,
	}
}

func formatEventResponse(event *models.Event) dto.EventResponse {
	attendees := make([]uuid.UUID, len(event.Attendees))
	for i, u := range event.Attendees {
		attendees[i] = u.ID
	}

	return dto.EventResponse{
		ID:            event.ID,
		Title:         event.Title,
		Description:   event.Description,
		Location:      event.Location,
		StartDate:     event.StartDate,
		EndDate:       event.EndDate,
		CreatedBy:     formatUserInfo(&event.CreatedBy),
		Attendees:     attendees,
		CoverImageURL: event.CoverImageURL,
		CreatedAt:     event.CreatedAt,
	}
}

func formatUserResponse(user *models.User) dto.UserResponse {
	clubs := make([]dto.ClubRef, len(user.Clubs))
	for i, cl := range user.Clubs {
		clubs[i] = dto.ClubRef{ID: cl.ID, Name: cl.Name}
	}

	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}

	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		College:   user.College,
		Year:      user.Year,
		Skills:    skills,
		AvatarURL: user.AvatarURL,
		Clubs:     clubs,
		CreatedAt: user.CreatedAt,
	}
}
