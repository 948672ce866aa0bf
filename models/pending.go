package models

import (
	"encoding/json"
	"time"
)

// EntityKind names the kind of synchronized entity.
type EntityKind string

const (
	KindNote EntityKind = "note"
	KindPost EntityKind = "post"
)

// OperationType is the mutation a pending operation replays.
type OperationType string

const (
	OperationSave   OperationType = "save"
	OperationDelete OperationType = "delete"
)

// PendingOperation is a local mutation the server has not confirmed yet.
// There is at most one per (Kind, ClientSideID); a newer one replaces the
// older snapshot.
type PendingOperation struct {
	Kind         EntityKind      `json:"kind"`
	ClientSideID string          `json:"client_side_id"`
	Operation    OperationType   `json:"operation"`
	Snapshot     json.RawMessage `json:"snapshot"`
	EnqueuedAt   time.Time       `json:"enqueued_at"`
	Attempts     int             `json:"attempts"`
	LastError    string          `json:"last_error,omitempty"`
	// Paused entries are kept but not replayed until a newer operation
	// replaces them.
	Paused bool `json:"paused,omitempty"`
}
