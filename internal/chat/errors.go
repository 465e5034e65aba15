package chat

import (
	"fmt"
)

// StorageError represents errors related to turn persistence
type StorageError struct {
	Operation string
	SessionID string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error during %s for session %s: %v", e.Operation, e.SessionID, e.Cause)
	}
	return fmt.Sprintf("storage error during %s for session %s", e.Operation, e.SessionID)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates an error for a failed store operation
func NewStorageError(operation, sessionID string, cause error) *StorageError {
	return &StorageError{
		Operation: operation,
		SessionID: sessionID,
		Cause:     cause,
	}
}

// OracleError represents a transport or API failure from the completion service
type OracleError struct {
	SessionID string
	Cause     error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle error for session %s: %v", e.SessionID, e.Cause)
}

func (e *OracleError) Unwrap() error {
	return e.Cause
}

// NewOracleError creates an error for a failed oracle consultation
func NewOracleError(sessionID string, cause error) *OracleError {
	return &OracleError{
		SessionID: sessionID,
		Cause:     cause,
	}
}

// Upstream error operation types
const (
	UpstreamOpListOfferings = "list_offerings"
	UpstreamOpCreateBooking = "create_booking"
)

// UpstreamError represents a failure calling the remote booking service.
// These degrade into a fixed apology reply and never fail the chat turn.
type UpstreamError struct {
	Operation string
	Cause     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error during %s: %v", e.Operation, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// NewUpstreamError creates an error for a failed upstream booking call
func NewUpstreamError(operation string, cause error) *UpstreamError {
	return &UpstreamError{
		Operation: operation,
		Cause:     cause,
	}
}
