package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/campus-connect/internal/middleware"
	"github.com/thereayou/campus-connect/internal/services"
	"github.com/thereayou/campus-connect/pkg/httperr"
)

// Лимит и набор форматов совпадают с тем, что ждет клиент
const maxUploadSize = 5 << 20 // 5 MB

var allowedImageExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type UploadHandler struct {
	users services.UserStore
	dir   string
}

func NewUploadHandler(users services.UserStore, dir string) *UploadHandler {
	return &UploadHandler{users: users, dir: dir}
}

// Upload сохраняет картинку и возвращает публичный URL
func (h *UploadHandler) Upload(c *gin.Context) {
	url, filename, err := h.saveFile(c)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "filename": filename})
}

// UploadProfile сохраняет картинку и делает ее аватаром пользователя
func (h *UploadHandler) UploadProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	url, _, err := h.saveFile(c)
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.users.GetUser(userID.String())
	if err != nil {
		c.Error(notFoundOr(err, "User not found"))
		return
	}

	user.AvatarURL = url
	if err := h.users.UpdateUser(user); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Profile image uploaded",
		"avatarUrl": url,
		"user":      formatUserResponse(user),
	})
}

func (h *UploadHandler) saveFile(c *gin.Context) (url, filename string, err error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", "", httperr.BadRequest("File not provided")
	}

	if file.Size > maxUploadSize {
		return "", "", httperr.BadRequest("File too large, limit is 5 MB")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return "", "", httperr.BadRequest("Only image files (jpeg, png, gif) are allowed")
	}

	filename = fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, filename)); err != nil {
		return "", "", err
	}

	return publicURL(c, filename), filename, nil
}

// publicURL собирает абсолютный URL загруженного файла
func publicURL(c *gin.Context, filename string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/uploads/%s", scheme, c.Request.Host, filename)
}
