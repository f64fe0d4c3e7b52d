package main

import (
	"github.com/gin-gonic/gin"

	"github.com/thereayou/campus-connect/internal/handlers"
	"github.com/thereayou/campus-connect/internal/middleware"
	"github.com/thereayou/campus-connect/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	jwtMgr *auth.JWTManager,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	postH *handlers.PostHandler,
	clubH *handlers.ClubHandler,
	eventH *handlers.EventHandler,
	uploadH *handlers.UploadHandler,
	wsH *handlers.WebSocketHandler,
) {
	authRequired := middleware.AuthMiddleware(jwtMgr)

	api := r.Group("/api")

	// Auth endpoints
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
	}

	// Users
	users := api.Group("/users")
	{
		users.GET("/me", authRequired, userH.GetMe)
		users.PUT("/me", authRequired, userH.UpdateMe)
		users.GET("/:id", userH.GetUser)
	}

	// Posts
	posts := api.Group("/posts")
	{
		posts.GET("", authRequired, postH.GetFeed)
		posts.POST("", authRequired, postH.CreatePost)
		posts.GET("/:id", postH.GetPost)
		posts.PUT("/:id", authRequired, postH.UpdatePost)
		posts.DELETE("/:id", authRequired, postH.DeletePost)
		posts.POST("/:id/like", authRequired, postH.ToggleLike)
		posts.POST("/:id/comment", authRequired, postH.AddComment)
	}

	// Clubs
	clubs := api.Group("/clubs")
	{
		clubs.GET("", clubH.ListClubs)
		clubs.POST("", authRequired, clubH.CreateClub)
		clubs.POST("/:id/join", authRequired, clubH.ToggleMembership)
	}

	// Events
	events := api.Group("/events")
	{
		events.GET("", eventH.GetUpcoming)
		events.POST("", authRequired, eventH.CreateEvent)
		events.POST("/:id/join", authRequired, eventH.ToggleAttendance)
	}

	// Uploads
	uploads := api.Group("/uploads")
	{
		uploads.POST("", uploadH.Upload)
		uploads.POST("/profile", authRequired, uploadH.UploadProfile)
		uploads.POST("/post", authRequired, uploadH.Upload)
	}

	// Push-канал: подписка без аутентификации
	r.GET("/ws", wsH.HandleWebSocket)
}
