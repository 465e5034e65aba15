package oracle

import (
	"context"
	"encoding/json"
)

// ResultKind tags the two shapes a completion can take
type ResultKind string

const (
	KindText         ResultKind = "text"
	KindFunctionCall ResultKind = "function_call"
)

// Callable function names declared to the completion service. The set is
// enumerated here for dispatch but the Result type does not assume it is closed.
const (
	FunctionGetRoomOptions = "get_room_options"
	FunctionBookRoom       = "book_room"
)

// Message is one element of the transcript sent to the completion service
type Message struct {
	Role    string
	Content string
}

// Result is the tagged outcome of a completion: either free text or exactly
// one function invocation.
type Result struct {
	Kind      ResultKind
	Content   string
	Name      string
	Arguments json.RawMessage
}

// Completer defines the interface to the completion service. The transcript
// must already carry the system directive as its first element; implementations
// send it unmodified and untruncated.
type Completer interface {
	Complete(ctx context.Context, transcript []Message) (*Result, error)
}
