package chat

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreAppendAndList(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	base := time.Now()
	contents := []string{"hi", "hello!", "show me rooms"}
	for i, content := range contents {
		err := store.AppendTurn(ctx, &Turn{
			UUID:      uuid.New(),
			SessionID: "session-1",
			Role:      RoleUser,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		})
		require.NoError(t, err)
	}

	turns, err := store.ListTurns(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, turns, 3)

	for i, turn := range turns {
		assert.Equal(t, contents[i], turn.Content)
	}
	for i := 1; i < len(turns); i++ {
		assert.False(t, turns[i].CreatedAt.Before(turns[i-1].CreatedAt),
			"turns must be in non-decreasing creation-time order")
	}
}

func TestInMemoryStoreUnknownSession(t *testing.T) {
	store := NewInMemoryStore()

	turns, err := store.ListTurns(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestInMemoryStoreSessionIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	require.NoError(t, store.AppendTurn(ctx, &Turn{UUID: uuid.New(), SessionID: "a", Role: RoleUser, Content: "one", CreatedAt: time.Now()}))
	require.NoError(t, store.AppendTurn(ctx, &Turn{UUID: uuid.New(), SessionID: "b", Role: RoleUser, Content: "two", CreatedAt: time.Now()}))

	turnsA, err := store.ListTurns(ctx, "a")
	require.NoError(t, err)
	turnsB, err := store.ListTurns(ctx, "b")
	require.NoError(t, err)

	require.Len(t, turnsA, 1)
	require.Len(t, turnsB, 1)
	assert.Equal(t, "one", turnsA[0].Content)
	assert.Equal(t, "two", turnsB[0].Content)
}
