package service

import (
	"fmt"
	"net/http"
	"time"

	"demandletter/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type ChatServiceInterface interface {
	Send(message string) (string, error)
}

// ChatService talks to the chat webhook. Unlike document generation this call
// blocks the request that triggered it, so it carries a bounded timeout.
type ChatService struct {
	WebhookURL string
	Timeout    time.Duration
}

func NewChatService() *ChatService {
	cfg := config.LoadWebhookConfig()
	return &ChatService{
		WebhookURL: cfg.ChatURL,
		Timeout:    cfg.ChatTimeout,
	}
}

func (s *ChatService) Send(message string) (string, error) {
	client := resty.New().SetTimeout(s.Timeout)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"message": message}).
		Post(s.WebhookURL)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("chat webhook returned status %d", resp.StatusCode())
	}

	body := resp.String()
	// n8n-style webhooks wrap the reply in JSON; plain text endpoints just
	// echo the answer in the body.
	if reply := gjson.Get(body, "response").String(); reply != "" {
		return reply, nil
	}
	if reply := gjson.Get(body, "output").String(); reply != "" {
		return reply, nil
	}
	if body == "" {
		return "", fmt.Errorf("chat webhook returned an empty reply")
	}
	return body, nil
}
