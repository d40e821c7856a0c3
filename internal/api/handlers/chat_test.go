package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

type fakeChatService struct {
	resp      *models.ChatResponse
	err       error
	chunks    []string
	streamErr error
	gotReq    models.ChatRequest
}

func (f *fakeChatService) Complete(_ context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func (f *fakeChatService) Stream(_ context.Context, req models.ChatRequest, fn func(chunk string) error) error {
	f.gotReq = req
	if f.streamErr != nil {
		return f.streamErr
	}
	for _, c := range f.chunks {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestChat_UnavailableReturns503(t *testing.T) {
	h := NewChatHandler(nil, testLogger())

	req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestChatStream_UnavailableReturns503(t *testing.T) {
	h := NewChatHandler(nil, testLogger())

	req := httptest.NewRequest("POST", "/api/v1/chat/stream", strings.NewReader(`{"message":"hi"}`))
	rec := httptest.NewRecorder()
	h.ChatStream(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestChat_AppliesDefaultsAndReturnsResponse(t *testing.T) {
	svc := &fakeChatService{resp: &models.ChatResponse{
		Response:  "hello!",
		ToolCalls: []string{},
		DataUsed:  map[string]interface{}{},
	}}
	h := NewChatHandler(svc, testLogger())

	req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User", svc.gotReq.UserName)
	assert.Equal(t, 18, svc.gotReq.UserAge)
	assert.JSONEq(t, `{"response":"hello!","tool_calls":[],"data_used":{}}`, rec.Body.String())
}

func TestChat_ErrorReturns500(t *testing.T) {
	svc := &fakeChatService{err: errors.New("model exploded")}
	h := NewChatHandler(svc, testLogger())

	req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "model exploded")
}

func TestChat_InvalidBodyReturns400(t *testing.T) {
	h := NewChatHandler(&fakeChatService{}, testLogger())

	req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatStream_ForwardsChunksInOrder(t *testing.T) {
	svc := &fakeChatService{chunks: []string{"Bit", "coin", " basics"}}
	h := NewChatHandler(svc, testLogger())

	req := httptest.NewRequest("POST", "/api/v1/chat/stream", strings.NewReader(`{"message":"explain"}`))
	rec := httptest.NewRecorder()
	h.ChatStream(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	expected := "data: {\"content\":\"Bit\"}\n\n" +
		"data: {\"content\":\"coin\"}\n\n" +
		"data: {\"content\":\" basics\"}\n\n" +
		"data: [DONE]\n\n"
	assert.Equal(t, expected, body)
}

func TestChatStream_ErrorOmitsDoneMarker(t *testing.T) {
	svc := &fakeChatService{streamErr: errors.New("upstream closed")}
	h := NewChatHandler(svc, testLogger())

	req := httptest.NewRequest("POST", "/api/v1/chat/stream", strings.NewReader(`{"message":"explain"}`))
	rec := httptest.NewRecorder()
	h.ChatStream(rec, req)

	assert.NotContains(t, rec.Body.String(), "[DONE]")
}
