package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// ChatService is the chat orchestration contract the handler depends on.
type ChatService interface {
	Complete(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	Stream(ctx context.Context, req models.ChatRequest, fn func(chunk string) error) error
}

// ChatHandler serves the single-shot and streaming chat endpoints. A nil
// service means the assistant failed to initialize at startup; both
// endpoints then fail fast with 503 instead of degrading.
type ChatHandler struct {
	svc    ChatService
	logger *logrus.Entry
}

// NewChatHandler creates a chat handler.
func NewChatHandler(svc ChatService, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		svc:    svc,
		logger: logger.WithField("component", "chat-api"),
	}
}

// Chat handles POST /api/v1/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		writeError(w, http.StatusServiceUnavailable, "Chat service unavailable (initialization failed)")
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ApplyDefaults()

	resp, err := h.svc.Complete(r.Context(), req)
	if err != nil {
		h.logger.WithError(err).Error("Chat completion failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ChatStream handles POST /api/v1/chat/stream. Chunks are forwarded as
// SSE data events as the assistant produces them; the request context
// stops the stream when the client disconnects.
func (h *ChatHandler) ChatStream(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		writeError(w, http.StatusServiceUnavailable, "Chat service unavailable")
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ApplyDefaults()

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	err := h.svc.Stream(r.Context(), req, func(chunk string) error {
		data, err := json.Marshal(map[string]string{"content": chunk})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		// Headers are already sent; all we can do is log and close.
		h.logger.WithError(err).Error("Chat stream aborted")
		return
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}
