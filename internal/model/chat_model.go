package model

import (
	"time"
)

// ChatMessage is one user/bot exchange. BotResponse stays NULL until the chat
// webhook answers; it is filled at most once and never rewritten.
type ChatMessage struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserMessage string    `gorm:"type:text" json:"user_message"`
	BotResponse *string   `gorm:"type:text" json:"bot_response"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (m *ChatMessage) TableName() string {
	return "chat_history"
}
