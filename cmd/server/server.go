package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/thereayou/campus-connect/internal/cache"
	"github.com/thereayou/campus-connect/internal/config"
	"github.com/thereayou/campus-connect/internal/database"
	"github.com/thereayou/campus-connect/internal/handlers"
	"github.com/thereayou/campus-connect/internal/middleware"
	"github.com/thereayou/campus-connect/internal/websocket"
	"github.com/thereayou/campus-connect/pkg/auth"
	"github.com/thereayou/campus-connect/pkg/httperr"
)

type Server struct {
	Router *gin.Engine
	Cfg    *config.Config
	DB     *database.Database
	Hub    *websocket.Hub
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg := config.Load()

	dbConn, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	// Кэш и push-канал — разделяемые синглтоны процесса,
	// инициализируются один раз и живут до остановки
	feedCache := newFeedCache(cfg.RedisURL)

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiresIn)

	hub := websocket.NewHub()
	go hub.Run()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Cannot create upload dir: %v", err)
	}

	authH := handlers.NewAuthHandler(dbConn, jwtMgr)
	userH := handlers.NewUserHandler(dbConn)
	postH := handlers.NewPostHandler(dbConn, feedCache, hub)
	clubH := handlers.NewClubHandler(dbConn)
	eventH := handlers.NewEventHandler(dbConn, feedCache)
	uploadH := handlers.NewUploadHandler(dbConn, cfg.UploadDir)
	wsH := handlers.NewWebSocketHandler(hub)

	router := gin.Default()
	router.Use(middleware.CORS(cfg.ClientOrigin))
	router.Use(middleware.ErrorHandler(cfg.Production))

	// Неизвестные маршруты отвечают тем же JSON, что и остальные ошибки
	router.NoRoute(func(c *gin.Context) {
		c.Error(httperr.NotFound("Route not found"))
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CampusConnect API is running"})
	})

	// Раздача загруженных файлов; заголовок нужен, чтобы SPA с другого
	// origin могла показывать картинки
	files := router.Group("/uploads", func(c *gin.Context) {
		c.Header("Cross-Origin-Resource-Policy", "cross-origin")
	})
	files.Static("/", cfg.UploadDir)

	APIEndpoints(router, jwtMgr, authH, userH, postH, clubH, eventH, uploadH, wsH)

	return &Server{
		Router: router,
		Cfg:    cfg,
		DB:     dbConn,
		Hub:    hub,
	}
}

// newFeedCache подключает Redis, если он сконфигурирован. Недоступный
// Redis не валит процесс: клиент переподключится сам, а до тех пор
// обработчики ходят напрямую в базу.
func newFeedCache(redisURL string) cache.Cache {
	if redisURL == "" {
		log.Println("REDIS_URL is not set, feed cache disabled")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, feed cache disabled: %v", err)
		return nil
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis ping failed, continuing without warm cache: %v", err)
	} else {
		log.Println("Connected to Redis")
	}

	return cache.NewRedisCache(rdb)
}

func (s *Server) Run() {
	log.Printf("Server starting on port %s", s.Cfg.Port)
	if err := s.Router.Run(":" + s.Cfg.Port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
