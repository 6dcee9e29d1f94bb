package repository

import (
	"fmt"
	"testing"

	"demandletter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHistoryPreservesInsertionOrder(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))

	for i := 0; i < 5; i++ {
		msg := model.ChatMessage{UserMessage: fmt.Sprintf("message %d", i)}
		require.NoError(t, repo.CreateMessage(&msg))
	}

	msgs, err := repo.ListMessages()
	require.NoError(t, err)
	require.Len(t, msgs, 5)
	for i, msg := range msgs {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.UserMessage)
		assert.Nil(t, msg.BotResponse)
	}
}

func TestFillResponseSetsOnce(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))

	msg := model.ChatMessage{UserMessage: "hello"}
	require.NoError(t, repo.CreateMessage(&msg))

	require.NoError(t, repo.FillResponse(msg.ID, "hi there"))
	// second fill is a no-op, the original reply stands
	require.NoError(t, repo.FillResponse(msg.ID, "something else"))

	msgs, err := repo.ListMessages()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].BotResponse)
	assert.Equal(t, "hi there", *msgs[0].BotResponse)
}
