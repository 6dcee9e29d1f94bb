package dto

import (
	"time"
)

type SendMessageRequest struct {
	Message string `json:"message"`
}

type ChatMessageDTO struct {
	ID          uint      `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse *string   `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}
