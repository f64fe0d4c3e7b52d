package cache

import (
	"context"
	"time"
)

// Ключи фиксированные: кэшируются всего два результата запросов,
// инвалидация всегда выбрасывает результат целиком
const (
	PostsKey  = "posts:latest"
	EventsKey = "events:upcoming"

	TTL = 60 * time.Second
)

// Cache — это ускоритель, а не источник истины: любая ошибка здесь
// означает "иди в базу", а не отказ запроса
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
