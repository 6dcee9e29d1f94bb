package usecase

import (
	"errors"
	"log"
	"strings"

	"demandletter/internal/dto"
	"demandletter/internal/model"
	"demandletter/internal/repository"
	"demandletter/internal/service"
)

var ErrEmptyMessage = errors.New("message cannot be empty")

type ChatUsecase struct {
	chatRepo *repository.ChatRepository
	chat     service.ChatServiceInterface
}

func NewChatUsecase(chatRepo *repository.ChatRepository, chat service.ChatServiceInterface) *ChatUsecase {
	return &ChatUsecase{chatRepo: chatRepo, chat: chat}
}

// SendMessage persists the user message, blocks on the chat webhook, and
// fills the stored row with the reply. On webhook failure the row keeps its
// NULL response so the failed exchange stays visible in history.
func (uc *ChatUsecase) SendMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	msg := model.ChatMessage{UserMessage: message}
	if err := uc.chatRepo.CreateMessage(&msg); err != nil {
		return "", err
	}

	reply, err := uc.chat.Send(message)
	if err != nil {
		log.Printf("chat message %d: webhook call failed: %v", msg.ID, err)
		return "", err
	}

	if err := uc.chatRepo.FillResponse(msg.ID, reply); err != nil {
		return "", err
	}

	return reply, nil
}

func (uc *ChatUsecase) History() ([]dto.ChatMessageDTO, error) {
	msgs, err := uc.chatRepo.ListMessages()
	if err != nil {
		return nil, err
	}

	history := make([]dto.ChatMessageDTO, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, dto.ChatMessageDTO{
			ID:          m.ID,
			UserMessage: m.UserMessage,
			BotResponse: m.BotResponse,
			Timestamp:   m.Timestamp,
		})
	}
	return history, nil
}
