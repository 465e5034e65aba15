package chat

import "context"

// TurnStore defines the interface for turn persistence operations.
// The log is append-only: turns are never updated or deleted.
type TurnStore interface {
	AppendTurn(ctx context.Context, turn *Turn) error
	ListTurns(ctx context.Context, sessionID string) ([]*Turn, error)
}

// ChatManager defines the interface for processing inbound chat turns
type ChatManager interface {
	HandleTurn(ctx context.Context, sessionID, message string) (string, error)
}
