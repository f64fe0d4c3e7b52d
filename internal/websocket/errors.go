package websocket

import "errors"

var (
	ErrBroadcastQueueFull = errors.New("broadcast queue is full")
)
