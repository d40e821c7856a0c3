package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

func TestBuildMessages(t *testing.T) {
	history := []models.ChatTurn{
		{Role: "user", Content: "what is bitcoin?"},
		{Role: "assistant", Content: "Bitcoin is a digital currency."},
		{Role: "narrator", Content: "unknown roles become user turns"},
		{Role: "user", Content: ""},
	}

	messages := buildMessages(history, "is it safe?")
	require.Len(t, messages, 4, "empty turns are dropped")

	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "assistant", messages[1].Role)
	assert.Equal(t, "user", messages[2].Role)

	last := messages[len(messages)-1]
	assert.Equal(t, "user", last.Role)
	require.Len(t, last.Content, 1)
	assert.Equal(t, "is it safe?", last.Content[0].Text)
}

func TestBuildMessages_NoHistory(t *testing.T) {
	messages := buildMessages(nil, "hello")
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].Role)
}

func TestSystemPrompt_IncludesUser(t *testing.T) {
	prompt := systemPrompt("Sana", 22)
	assert.Contains(t, prompt, "Sana")
	assert.Contains(t, prompt, "22")
}

func TestChatRequestDefaults(t *testing.T) {
	req := models.ChatRequest{Message: "hi"}
	req.ApplyDefaults()

	assert.Equal(t, "User", req.UserName)
	assert.Equal(t, 18, req.UserAge)
	assert.NotNil(t, req.ConversationHistory)
	assert.Empty(t, req.ConversationHistory)
}
