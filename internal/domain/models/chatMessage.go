package models

import "time"

// ChatMessage is a single entry in the mock stream chat.
type ChatMessage struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsSystem  bool      `json:"is_system,omitempty"`
}
