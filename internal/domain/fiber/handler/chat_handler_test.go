package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func sendMessageRequest(payload string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/send_message", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSendMessageRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hi there"))
	}))
	defer srv.Close()

	app, _ := newTestApp(t, "http://127.0.0.1:0", srv.URL)

	resp, err := app.Test(sendMessageRequest(`{"message":"hello"}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Equal(t, "hi there", gjson.GetBytes(body, "data.response").String())

	histReq := httptest.NewRequest(http.MethodGet, "/chat_history", nil)
	histResp, err := app.Test(histReq, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, histResp.StatusCode)

	histBody := readBody(t, histResp)
	rows := gjson.GetBytes(histBody, "data").Array()
	require.Len(t, rows, 1)
	assert.Equal(t, "hello", rows[0].Get("user_message").String())
	assert.Equal(t, "hi there", rows[0].Get("bot_response").String())
}

func TestSendMessageRejectsEmpty(t *testing.T) {
	app, _ := newTestApp(t, "http://127.0.0.1:0", "http://127.0.0.1:0")

	resp, err := app.Test(sendMessageRequest(`{"message":"  "}`), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSendMessageWebhookError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	app, _ := newTestApp(t, "http://127.0.0.1:0", srv.URL)

	resp, err := app.Test(sendMessageRequest(`{"message":"hello"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	// the exchange is still recorded, response side empty
	histResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/chat_history", nil), -1)
	require.NoError(t, err)
	histBody := readBody(t, histResp)
	rows := gjson.GetBytes(histBody, "data").Array()
	require.Len(t, rows, 1)
	assert.Equal(t, gjson.Null, rows[0].Get("bot_response").Type)
}
