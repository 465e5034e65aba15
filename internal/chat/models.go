package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a turn in a conversation transcript
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn represents one stored message in a session's transcript
type Turn struct {
	UUID      uuid.UUID `json:"uuid"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest represents an inbound chat message from the client
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatResponse represents the assistant reply returned to the client
type ChatResponse struct {
	Message string `json:"message"`
}
