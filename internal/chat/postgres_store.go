package chat

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// PostgresStore implements TurnStore interface with PostgreSQL storage
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore creates a new PostgreSQL store
func NewPostgresStore(db *bun.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// OpenDB opens a bun database handle for the given postgres DSN
func OpenDB(dsn string, maxOpenConnections int) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	sqldb.SetMaxOpenConns(maxOpenConnections)

	return bun.NewDB(sqldb, pgdialect.New())
}

// TurnSchema represents the chat_turns table schema
type TurnSchema struct {
	bun.BaseModel `bun:"table:chat_turns,alias:ct"`

	// ID is a serial insertion counter used as an ordering tiebreaker for
	// turns that land on the same created_at timestamp.
	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UUID      string    `bun:"uuid,notnull,type:uuid" json:"uuid"`
	SessionID string    `bun:"session_id,notnull" json:"session_id"`
	Role      string    `bun:"role,notnull" json:"role"`
	Content   string    `bun:"content,type:text" json:"content"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// AppendTurn durably inserts one turn
func (s *PostgresStore) AppendTurn(ctx context.Context, turn *Turn) error {
	schema := &TurnSchema{
		UUID:      turn.UUID.String(),
		SessionID: turn.SessionID,
		Role:      string(turn.Role),
		Content:   turn.Content,
		CreatedAt: turn.CreatedAt,
	}

	_, err := s.db.NewInsert().
		Model(schema).
		Exec(ctx)
	if err != nil {
		return NewStorageError("append_turn", turn.SessionID, err)
	}

	return nil
}

// ListTurns returns the full history for a session, ascending by creation time
func (s *PostgresStore) ListTurns(ctx context.Context, sessionID string) ([]*Turn, error) {
	var schemas []TurnSchema
	err := s.db.NewSelect().
		Model(&schemas).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, NewStorageError("list_turns", sessionID, err)
	}

	turns := make([]*Turn, len(schemas))
	for i, schema := range schemas {
		turns[i] = schemaToTurn(schema)
	}

	return turns, nil
}

// Ping verifies database connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}
	return nil
}

// schemaToTurn converts database schema to turn model
func schemaToTurn(schema TurnSchema) *Turn {
	id, _ := uuid.Parse(schema.UUID)
	return &Turn{
		UUID:      id,
		SessionID: schema.SessionID,
		Role:      Role(schema.Role),
		Content:   schema.Content,
		CreatedAt: schema.CreatedAt,
	}
}
