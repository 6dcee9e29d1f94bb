package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type WebhookConfig struct {
	GeneratorURL    string
	ChatURL         string
	ChatTimeout     time.Duration
	DispatchWorkers int
}

var (
	webhookConfig *WebhookConfig
	webhookOnce   sync.Once
)

func LoadWebhookConfig() *WebhookConfig {
	webhookOnce.Do(func() {
		chatTimeout := 60 * time.Second
		if v := os.Getenv("CHAT_WEBHOOK_TIMEOUT"); v != "" {
			if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
				chatTimeout = time.Duration(secs) * time.Second
			}
		}
		workers := 32
		if v := os.Getenv("DISPATCH_WORKERS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				workers = n
			}
		}
		webhookConfig = &WebhookConfig{
			GeneratorURL:    os.Getenv("GENERATOR_WEBHOOK_URL"),
			ChatURL:         os.Getenv("CHAT_WEBHOOK_URL"),
			ChatTimeout:     chatTimeout,
			DispatchWorkers: workers,
		}
	})
	return webhookConfig
}
