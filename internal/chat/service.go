package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/analysis"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/assistant"
	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// Service orchestrates assistant invocations: it threads the caller's
// conversation history through, executes any analyzer tools the model
// requests, and shapes the result into the chat wire contract.
type Service struct {
	client     *assistant.Client
	technical  *analysis.TechnicalAnalyzer
	tokenomics *analysis.TokenomicsAnalyzer
	news       *analysis.NewsAnalyzer
	logger     *logrus.Entry
}

// NewService creates the chat service. Analyzer references may be nil;
// the corresponding tool then reports itself unavailable to the model.
func NewService(
	client *assistant.Client,
	technical *analysis.TechnicalAnalyzer,
	tokenomics *analysis.TokenomicsAnalyzer,
	news *analysis.NewsAnalyzer,
	logger *logrus.Logger,
) *Service {
	return &Service{
		client:     client,
		technical:  technical,
		tokenomics: tokenomics,
		news:       news,
		logger:     logger.WithField("component", "chat"),
	}
}

// Complete runs a single-shot chat exchange. When the model requests
// tools, they are executed locally, recorded for client transparency,
// and the results are fed back for the final answer.
func (s *Service) Complete(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	system := systemPrompt(req.UserName, req.UserAge)
	messages := buildMessages(req.ConversationHistory, req.Message)

	resp, err := s.client.Complete(ctx, system, messages, toolDefinitions)
	if err != nil {
		return nil, fmt.Errorf("assistant call failed: %w", err)
	}

	result := &models.ChatResponse{
		Response:  resp.Text(),
		ToolCalls: []string{},
		DataUsed:  map[string]interface{}{},
	}

	uses := resp.ToolUses()
	if len(uses) == 0 {
		return result, nil
	}

	toolResults := make([]assistant.ContentBlock, 0, len(uses))
	for _, use := range uses {
		output, runErr := s.runTool(ctx, use)
		result.ToolCalls = append(result.ToolCalls, use.Name)

		content := ""
		if runErr != nil {
			s.logger.WithError(runErr).WithField("tool", use.Name).Warn("Tool execution failed")
			content = fmt.Sprintf("tool failed: %v", runErr)
			result.DataUsed[use.Name] = content
		} else {
			result.DataUsed[use.Name] = output
			encoded, err := json.Marshal(output)
			if err != nil {
				return nil, fmt.Errorf("failed to encode tool output: %w", err)
			}
			content = string(encoded)
		}

		toolResults = append(toolResults, assistant.ContentBlock{
			Type:      "tool_result",
			ToolUseID: use.ID,
			Content:   content,
		})
	}

	// Feed the tool results back for the final answer.
	messages = append(messages,
		assistant.MessageParam{Role: "assistant", Content: resp.Content},
		assistant.MessageParam{Role: "user", Content: toolResults},
	)

	final, err := s.client.Complete(ctx, system, messages, toolDefinitions)
	if err != nil {
		return nil, fmt.Errorf("assistant follow-up call failed: %w", err)
	}

	result.Response = final.Text()
	return result, nil
}

// Stream relays assistant output chunks into fn without buffering the
// full response. No tool loop runs in streaming mode.
func (s *Service) Stream(ctx context.Context, req models.ChatRequest, fn func(chunk string) error) error {
	system := systemPrompt(req.UserName, req.UserAge)
	messages := buildMessages(req.ConversationHistory, req.Message)
	return s.client.Stream(ctx, system, messages, fn)
}

func systemPrompt(userName string, userAge int) string {
	return fmt.Sprintf(
		"You are Nunno, an empathetic financial educator for beginners. "+
			"You are talking to %s, age %d. Explain concepts simply, avoid jargon, "+
			"never give direct financial advice, and use the available tools when "+
			"the user asks about a specific asset.",
		userName, userAge)
}

// buildMessages maps the caller-supplied history plus the new message
// into assistant message parameters. Unknown author labels are treated
// as user turns.
func buildMessages(history []models.ChatTurn, message string) []assistant.MessageParam {
	out := make([]assistant.MessageParam, 0, len(history)+1)
	for _, turn := range history {
		if turn.Content == "" {
			continue
		}
		role := "user"
		if turn.Role == "assistant" {
			role = "assistant"
		}
		out = append(out, assistant.MessageParam{
			Role:    role,
			Content: []assistant.ContentBlock{{Type: "text", Text: turn.Content}},
		})
	}

	out = append(out, assistant.MessageParam{
		Role:    "user",
		Content: []assistant.ContentBlock{{Type: "text", Text: message}},
	})
	return out
}
