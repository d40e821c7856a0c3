package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/config"
)

const (
	messagesPath     = "/v1/messages"
	anthropicVersion = "2023-06-01"
)

// Client is a minimal Anthropic messages-API client with blocking and
// streaming variants.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	maxTokens  int
	headers    map[string]string
	logger     *logrus.Entry
}

// NewClient creates an assistant client. It fails when no API key is
// configured so the application can disable the chat endpoints instead
// of serving broken ones.
func NewClient(cfg *config.AssistantConfig, logger *logrus.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("assistant api key is required")
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		headers: map[string]string{
			"X-API-Key":         apiKey,
			"Anthropic-Version": anthropicVersion,
			"Content-Type":      "application/json",
		},
		logger: logger.WithField("component", "assistant"),
	}, nil
}

// Complete performs a blocking messages call and returns the fully
// materialized response.
func (c *Client) Complete(ctx context.Context, system string, messages []MessageParam, tools []Tool) (*MessageResponse, error) {
	payload := MessageRequest{
		Model:     c.model,
		System:    system,
		Messages:  messages,
		MaxTokens: c.maxTokens,
		Tools:     tools,
	}

	resp, err := c.doRequest(ctx, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, readAPIError(resp)
	}

	var msgResp MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return nil, fmt.Errorf("failed to decode assistant response: %w", err)
	}

	return &msgResp, nil
}

// Stream invokes the streaming endpoint and relays each text chunk into
// fn as it arrives. fn returning an error stops the stream; the request
// context cancels it when the downstream client disconnects.
func (c *Client) Stream(ctx context.Context, system string, messages []MessageParam, fn func(chunk string) error) error {
	if fn == nil {
		return errors.New("stream callback is required")
	}

	payload := MessageRequest{
		Model:     c.model,
		System:    system,
		Messages:  messages,
		MaxTokens: c.maxTokens,
		Stream:    true,
	}

	resp, err := c.doRequest(ctx, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return readAPIError(resp)
	}

	return consumeSSE(ctx, resp.Body, func(data string) error {
		data = strings.TrimSpace(data)
		if data == "" {
			return nil
		}

		var envelope streamEventEnvelope
		if err := json.Unmarshal([]byte(data), &envelope); err != nil {
			return fmt.Errorf("failed to decode stream envelope: %w", err)
		}

		if envelope.Type != "content_block_delta" {
			return nil
		}

		var delta contentBlockDeltaEvent
		if err := json.Unmarshal([]byte(data), &delta); err != nil {
			return fmt.Errorf("failed to decode stream delta: %w", err)
		}
		if delta.Delta.Text == "" {
			return nil
		}
		return fn(delta.Delta.Text)
	})
}

func (c *Client) doRequest(ctx context.Context, payload MessageRequest) (*http.Response, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to encode assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant request: %w", err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	return c.httpClient.Do(req)
}

func readAPIError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("assistant api status %d: %w", resp.StatusCode, err)
	}

	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return APIError{StatusCode: resp.StatusCode, Type: apiErr.Error.Type, Message: apiErr.Error.Message}
	}

	return APIError{StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(body))}
}
