package config

import (
	"os"
	"time"
)

type Config struct {
	Port         string
	DatabaseURL  string
	RedisURL     string
	JWTSecret    string
	JWTExpiresIn time.Duration
	ClientOrigin string
	UploadDir    string
	Production   bool
}

// Load читает конфигурацию из окружения. Пустой REDIS_URL — не ошибка,
// просто выключенный кэш.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "4000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: getDuration("JWT_EXPIRES_IN", 168*time.Hour),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:3000"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		Production:   os.Getenv("APP_ENV") == "production",
	}
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}
