// Package workers provides the long-running background workers of the
// client: the connectivity monitor, the connectivity trigger that drains
// pending operations when the network comes back, and a Workers aggregate
// that runs them together.
package workers

import (
	"context"

	"github.com/MKhiriev/lumina-sync/internal/service"
	"github.com/MKhiriev/lumina-sync/models"
)

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled or the worker has nothing left to do.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts an ordinary function to the Worker interface.
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}

// Pinger reports whether the server answers at all.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SyncCoordinator is the part of the coordinator the connectivity trigger
// drives.
type SyncCoordinator interface {
	HasPendingOperations() bool
	RefreshAndSync(ctx context.Context) <-chan service.Outcome[models.SyncReport]
}
