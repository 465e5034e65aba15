package chat

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// TurnIndexes holds the index definitions for the chat_turns table.
// Session lookup is the only query shape, so it gets the only index.
var TurnIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_chat_turns_session_id ON chat_turns (session_id)`,
}

// CreateTables creates all necessary tables for the conversation store
func CreateTables(ctx context.Context, db *bun.DB) error {
	models := []interface{}{
		(*TurnSchema)(nil),
	}

	for _, model := range models {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table for model %T: %w", model, err)
		}
	}

	return nil
}

// CreateIndexes creates all necessary indexes for the conversation store
func CreateIndexes(ctx context.Context, db *bun.DB) error {
	for _, indexSQL := range TurnIndexes {
		_, err := db.ExecContext(ctx, indexSQL)
		if err != nil {
			return fmt.Errorf("failed to create index with SQL %q: %w", indexSQL, err)
		}
	}

	return nil
}
