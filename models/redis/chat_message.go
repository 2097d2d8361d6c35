package redis

import "time"

// ChatMessage represents a message broadcast on the chat channel
type ChatMessage struct {
	Message   string    `json:"message"`
	Pseudo    string    `json:"pseudo"`
	Timestamp time.Time `json:"timestamp"`
}
