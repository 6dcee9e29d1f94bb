package handler

import (
	"errors"

	"demandletter/internal/dto"
	"demandletter/internal/usecase"
	"demandletter/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	uc *usecase.ChatUsecase
}

func NewChatHandler(uc *usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/send_message", h.SendMessage)
	app.Get("/chat_history", h.History)
}

func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	reply, err := h.uc.SendMessage(req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyMessage) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "message cannot be empty",
			}, nil)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "failed to reach chat service",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success send message",
		Data:    fiber.Map{"response": reply},
	})
}

func (h *ChatHandler) History(c *fiber.Ctx) error {
	history, err := h.uc.History()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get chat history",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get chat history",
		Data:    history,
	})
}
