package service

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/store"
	"github.com/MKhiriev/lumina-sync/models"
)

// pendingItem is a queued operation together with the generation it was
// stored under. A newer Put for the same entity bumps the generation, which
// lets a finishing push tell whether its snapshot is still the latest one.
type pendingItem struct {
	op  models.PendingOperation
	gen uint64
}

// pendingQueue is the in-memory map of queued operations for one entity
// kind, written through to the pending_operations table. Every critical
// section is a single map mutation; repository calls happen outside the lock.
type pendingQueue struct {
	kind models.EntityKind
	repo store.PendingOperationRepository

	mu    sync.Mutex
	items map[string]pendingItem
	gen   uint64

	now    func() time.Time
	logger *logger.Logger
}

func newPendingQueue(kind models.EntityKind, repo store.PendingOperationRepository, logger *logger.Logger) *pendingQueue {
	return &pendingQueue{
		kind:   kind,
		repo:   repo,
		items:  make(map[string]pendingItem),
		now:    time.Now,
		logger: logger,
	}
}

// Restore loads the operations persisted by a previous run. Entries already
// queued in memory win over the stored ones.
func (q *pendingQueue) Restore(ctx context.Context) error {
	ops, err := q.repo.GetPendingOperations(ctx, q.kind)
	if err != nil {
		return fmt.Errorf("restore pending %s operations: %w", q.kind, err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	for _, op := range ops {
		if _, ok := q.items[op.ClientSideID]; ok {
			continue
		}
		q.gen++
		q.items[op.ClientSideID] = pendingItem{op: op, gen: q.gen}
	}

	return nil
}

// Put queues op for clientSideID, replacing any older snapshot, and returns
// the generation of the new entry. A failure to persist the entry is only
// logged: the in-memory queue still replays it during this run.
func (q *pendingQueue) Put(ctx context.Context, clientSideID string, operation models.OperationType, snapshot any) (uint64, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return 0, fmt.Errorf("encode %s snapshot: %w", q.kind, err)
	}

	op := models.PendingOperation{
		Kind:         q.kind,
		ClientSideID: clientSideID,
		Operation:    operation,
		Snapshot:     raw,
		EnqueuedAt:   q.now().UTC(),
	}

	q.mu.Lock()
	q.gen++
	gen := q.gen
	q.items[clientSideID] = pendingItem{op: op, gen: gen}
	q.mu.Unlock()

	if err = q.repo.SavePendingOperation(context.WithoutCancel(ctx), op); err != nil {
		q.logger.Err(err).
			Str("func", "pendingQueue.Put").
			Str("kind", string(q.kind)).
			Str("client_side_id", clientSideID).
			Msg("pending operation is queued in memory only")
	}

	return gen, nil
}

// Get returns the queued operation for clientSideID.
func (q *pendingQueue) Get(clientSideID string) (models.PendingOperation, uint64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	it, ok := q.items[clientSideID]
	return it.op, it.gen, ok
}

// Complete removes the entry for clientSideID if it still has generation
// gen. It reports false when a newer operation replaced it.
func (q *pendingQueue) Complete(ctx context.Context, clientSideID string, gen uint64) bool {
	q.mu.Lock()
	it, ok := q.items[clientSideID]
	if !ok || it.gen != gen {
		q.mu.Unlock()
		return false
	}
	delete(q.items, clientSideID)
	q.mu.Unlock()

	q.deleteStored(ctx, clientSideID)
	return true
}

// Drop removes the entry for clientSideID whatever its generation.
func (q *pendingQueue) Drop(ctx context.Context, clientSideID string) {
	q.mu.Lock()
	_, ok := q.items[clientSideID]
	delete(q.items, clientSideID)
	q.mu.Unlock()

	if ok {
		q.deleteStored(ctx, clientSideID)
	}
}

// MarkFailed records a failed attempt on the entry if it is still
// generation gen.
func (q *pendingQueue) MarkFailed(ctx context.Context, clientSideID string, gen uint64, cause error) {
	q.update(ctx, clientSideID, gen, func(op *models.PendingOperation) bool {
		op.Attempts++
		if cause != nil {
			op.LastError = cause.Error()
		}
		return true
	})
}

// Pause keeps the entry with generation gen but excludes it from replay.
func (q *pendingQueue) Pause(ctx context.Context, clientSideID string, gen uint64) {
	q.update(ctx, clientSideID, gen, func(op *models.PendingOperation) bool {
		if op.Paused {
			return false
		}
		op.Paused = true
		return true
	})
}

// Patch applies fn to the current entry for clientSideID, whatever its
// generation, and persists the result when fn reports a change.
func (q *pendingQueue) Patch(ctx context.Context, clientSideID string, fn func(op *models.PendingOperation) bool) {
	q.update(ctx, clientSideID, 0, fn)
}

// update applies fn to the entry. gen 0 matches any generation.
func (q *pendingQueue) update(ctx context.Context, clientSideID string, gen uint64, fn func(op *models.PendingOperation) bool) {
	q.mu.Lock()
	it, ok := q.items[clientSideID]
	if !ok || (gen != 0 && it.gen != gen) {
		q.mu.Unlock()
		return
	}
	op := it.op
	op.Snapshot = slices.Clone(op.Snapshot)
	if !fn(&op) {
		q.mu.Unlock()
		return
	}
	it.op = op
	q.items[clientSideID] = it
	q.mu.Unlock()

	if err := q.repo.SavePendingOperation(context.WithoutCancel(ctx), op); err != nil {
		q.logger.Err(err).
			Str("func", "pendingQueue.update").
			Str("kind", string(q.kind)).
			Str("client_side_id", clientSideID).
			Msg("failed to persist pending operation")
	}
}

// List returns a snapshot of the queue, oldest first.
func (q *pendingQueue) List() []pendingItem {
	q.mu.Lock()
	out := make([]pendingItem, 0, len(q.items))
	for _, it := range q.items {
		out = append(out, it)
	}
	q.mu.Unlock()

	slices.SortFunc(out, func(a, b pendingItem) int {
		if c := a.op.EnqueuedAt.Compare(b.op.EnqueuedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.gen, b.gen)
	})
	return out
}

// Len returns the number of queued operations.
func (q *pendingQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *pendingQueue) deleteStored(ctx context.Context, clientSideID string) {
	// bookkeeping outlives a cancelled operation
	if err := q.repo.DeletePendingOperation(context.WithoutCancel(ctx), q.kind, clientSideID); err != nil {
		q.logger.Err(err).
			Str("func", "pendingQueue.deleteStored").
			Str("kind", string(q.kind)).
			Str("client_side_id", clientSideID).
			Msg("failed to delete pending operation")
	}
}
