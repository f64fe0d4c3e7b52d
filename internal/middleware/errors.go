package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/campus-connect/pkg/httperr"
	"gorm.io/gorm"
)

// ErrorHandler — единственная точка, превращающая ошибки обработчиков
// в ответы клиенту. Если ответ уже частично отправлен, второй ответ не
// пишется, ошибка только логируется.
func ErrorHandler(isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		err := last.Err

		if c.Writer.Written() {
			log.Printf("Error after response written: %v", err)
			return
		}

		status := http.StatusInternalServerError
		message := err.Error()

		var appErr *httperr.Error
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			message = appErr.Message
		case errors.Is(err, gorm.ErrRecordNotFound):
			status = http.StatusNotFound
			message = "Not found"
		}

		if status == http.StatusInternalServerError {
			log.Printf("Error handler caught: %v", err)
			if isProd {
				message = "Internal server error"
			}
		}

		c.JSON(status, gin.H{
			"success": false,
			"message": message,
		})
	}
}
