package repository

import (
	"time"

	"demandletter/internal/model"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

func (r *ChatRepository) CreateMessage(msg *model.ChatMessage) error {
	msg.Timestamp = time.Now()
	return r.db.Create(msg).Error
}

// FillResponse sets bot_response exactly once. A row that already has a
// response is left untouched.
func (r *ChatRepository) FillResponse(id uint, response string) error {
	return r.db.Model(&model.ChatMessage{}).
		Where("id = ? AND bot_response IS NULL", id).
		Update("bot_response", response).Error
}

// ListMessages returns the full history in insertion order.
func (r *ChatRepository) ListMessages() ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	err := r.db.Order("id ASC").Find(&msgs).Error
	return msgs, err
}
