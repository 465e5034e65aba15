package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChatManager struct {
	reply string
	err   error

	sessionIDs []string
	messages   []string
}

func (f *fakeChatManager) HandleTurn(ctx context.Context, sessionID, message string) (string, error) {
	f.sessionIDs = append(f.sessionIDs, sessionID)
	f.messages = append(f.messages, message)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestRouter(manager *fakeChatManager) http.Handler {
	as := &AppState{
		Chat:   manager,
		Logger: zap.NewNop(),
	}
	return setupRouter(as)
}

func postChatRequest(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPostChat(t *testing.T) {
	manager := &fakeChatManager{reply: "Welcome to LuxeStay!"}
	router := newTestRouter(manager)

	rec := postChatRequest(t, router, `{"message": "hi", "sessionId": "s1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Welcome to LuxeStay!"}`, rec.Body.String())

	require.Len(t, manager.sessionIDs, 1)
	assert.Equal(t, "s1", manager.sessionIDs[0])
	assert.Equal(t, "hi", manager.messages[0])
}

func TestPostChatMissingSessionID(t *testing.T) {
	manager := &fakeChatManager{reply: "unused"}
	router := newTestRouter(manager)

	for _, body := range []string{
		`{"message": "hi"}`,
		`{"message": "hi", "sessionId": ""}`,
		`{"sessionId": ""}`,
	} {
		rec := postChatRequest(t, router, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.JSONEq(t, `{"error": "sessionId is required"}`, rec.Body.String())
	}

	assert.Empty(t, manager.sessionIDs)
}

func TestPostChatEmptyMessageAccepted(t *testing.T) {
	manager := &fakeChatManager{reply: "hm?"}
	router := newTestRouter(manager)

	rec := postChatRequest(t, router, `{"message": "", "sessionId": "s1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, manager.messages, 1)
	assert.Equal(t, "", manager.messages[0])
}

func TestPostChatServiceFailure(t *testing.T) {
	manager := &fakeChatManager{err: errors.New("oracle unreachable")}
	router := newTestRouter(manager)

	rec := postChatRequest(t, router, `{"message": "hi", "sessionId": "s1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "An error occurred"}`, rec.Body.String())
}

func TestPostChatMalformedBody(t *testing.T) {
	manager := &fakeChatManager{reply: "unused"}
	router := newTestRouter(manager)

	rec := postChatRequest(t, router, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, manager.sessionIDs)
}
