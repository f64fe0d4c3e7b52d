package services

import "github.com/thereayou/campus-connect/internal/websocket"

// Broadcaster рассылает событие всем подключенным push-клиентам.
// Реализация — websocket.Hub, в тестах — запоминающая заглушка.
type Broadcaster interface {
	Broadcast(event websocket.EventName, data interface{}) error
}
