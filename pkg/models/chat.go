package models

// ChatTurn is one prior message in a conversation. Author follows the
// "user"/"assistant" convention; the server never persists turns, the
// client resends the full history with every request.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/v1/chat and /api/v1/chat/stream.
type ChatRequest struct {
	Message             string     `json:"message"`
	UserName            string     `json:"user_name"`
	UserAge             int        `json:"user_age"`
	ConversationHistory []ChatTurn `json:"conversation_history"`
}

// ApplyDefaults fills the documented defaults for omitted fields.
func (r *ChatRequest) ApplyDefaults() {
	if r.UserName == "" {
		r.UserName = "User"
	}
	if r.UserAge == 0 {
		r.UserAge = 18
	}
	if r.ConversationHistory == nil {
		r.ConversationHistory = []ChatTurn{}
	}
}

// ChatResponse is the single-shot chat result. ToolCalls lists the
// analyzer tools invoked while composing the answer, DataUsed maps each
// tool to the auxiliary data it produced. Both default to empty.
type ChatResponse struct {
	Response  string                 `json:"response"`
	ToolCalls []string               `json:"tool_calls"`
	DataUsed  map[string]interface{} `json:"data_used"`
}
