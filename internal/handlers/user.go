package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/campus-connect/internal/handlers/dto"
	"github.com/thereayou/campus-connect/internal/middleware"
	"github.com/thereayou/campus-connect/internal/services"
	"github.com/thereayou/campus-connect/pkg/httperr"
)

type UserHandler struct {
	users services.UserStore
}

func NewUserHandler(users services.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe возвращает профиль текущего пользователя
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.users.GetUser(userID.String())
	if err != nil {
		c.Error(notFoundOr(err, "User not found"))
		return
	}

	c.JSON(http.StatusOK, formatUserResponse(user))
}

// GetUser возвращает профиль по id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetUser(c.Param("id"))
	if err != nil {
		c.Error(notFoundOr(err, "User not found"))
		return
	}

	c.JSON(http.StatusOK, formatUserResponse(user))
}

// UpdateMe частично обновляет профиль. Пароль здесь не меняется,
// даже если его прислали.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest(err.Error()))
		return
	}

	user, err := h.users.GetUser(userID.String())
	if err != nil {
		c.Error(notFoundOr(err, "User not found"))
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.College != nil {
		user.College = *req.College
	}
	if req.Year != nil {
		user.Year = *req.Year
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := h.users.UpdateUser(user); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, formatUserResponse(user))
}
