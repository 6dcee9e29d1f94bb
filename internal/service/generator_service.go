package service

import (
	"fmt"
	"net/http"
	"strings"

	"demandletter/internal/config"
	"github.com/go-resty/resty/v2"
)

type GeneratorServiceInterface interface {
	Generate(txtName, txtContent, csvName, csvContent string) ([]byte, error)
}

// GeneratorService talks to the document-generation webhook. The endpoint is
// opaque: two files in, one DOCX out.
type GeneratorService struct {
	WebhookURL string
}

func NewGeneratorService() *GeneratorService {
	return &GeneratorService{
		WebhookURL: config.LoadWebhookConfig().GeneratorURL,
	}
}

// Generate posts both payloads as multipart and waits for the document.
// Generation can run arbitrarily long, so the client has no timeout — callers
// must not invoke this from a request handler goroutine.
func (s *GeneratorService) Generate(txtName, txtContent, csvName, csvContent string) ([]byte, error) {
	client := resty.New().SetTimeout(0)
	resp, err := client.R().
		SetFileReader("txt_file", txtName, strings.NewReader(txtContent)).
		SetFileReader("csv_file", csvName, strings.NewReader(csvContent)).
		Post(s.WebhookURL)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("generator webhook returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("generator webhook returned an empty document")
	}

	return body, nil
}
