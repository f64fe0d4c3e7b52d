package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/thereayou/campus-connect/internal/handlers/dto"
	"github.com/thereayou/campus-connect/internal/models"
	"github.com/thereayou/campus-connect/internal/services"
	"github.com/thereayou/campus-connect/pkg/auth"
	"github.com/thereayou/campus-connect/pkg/httperr"
)

type AuthHandler struct {
	users      services.UserStore
	jwtManager *auth.JWTManager
}

func NewAuthHandler(users services.UserStore, jwtMgr *auth.JWTManager) *AuthHandler {
	return &AuthHandler{users: users, jwtManager: jwtMgr}
}

// Register создает пользователя и сразу выдает токен
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Name, email and password required"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := h.users.FindUserByEmail(email); err == nil {
		c.Error(httperr.BadRequest("Email already registered"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.Error(err)
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		College:      req.College,
		Year:         req.Year,
	}

	if err := h.users.SaveUser(user); err != nil {
		// Проигравший гонку за email упирается в уникальный индекс
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.Error(httperr.BadRequest("Email already registered"))
			return
		}
		c.Error(err)
		return
	}

	token, err := h.jwtManager.Generate(user.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  authUserResponse(user),
	})
}

// Login проверяет пароль и выдает токен
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Email and password required"))
		return
	}

	user, err := h.users.FindUserByEmail(req.Email)
	if err != nil {
		// Не раскрываем, существует ли email
		c.Error(httperr.BadRequest("Invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.Error(httperr.BadRequest("Invalid credentials"))
		return
	}

	token, err := h.jwtManager.Generate(user.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  authUserResponse(user),
	})
}

func authUserResponse(user *models.User) gin.H {
	return gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"college": user.College,
		"year":    user.Year,
	}
}
