package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/models"
)

const defaultSyncInterval = 5 * time.Minute

// pendingSyncer is the part of the Coordinator the job drives.
type pendingSyncer interface {
	SyncAllPending(ctx context.Context) <-chan Outcome[models.SyncReport]
	HasPendingOperations() bool
}

type clientSyncJob struct {
	syncer pendingSyncer
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that replays pending operations
// through syncer on a ticker. The job is idle until Start is called.
func NewClientSyncJob(syncer pendingSyncer, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncer: syncer, logger: logger}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that replays the queues every interval.
// A tick is skipped while other coordinator operations are still running.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) tick(ctx context.Context) {
	if j.syncer.HasPendingOperations() {
		return
	}

	report, err := Await(ctx, j.syncer.SyncAllPending(ctx))
	switch {
	case err == nil:
		if report.Synced > 0 {
			j.logger.Info().
				Str("func", "clientSyncJob.tick").
				Int("synced", report.Synced).
				Msg("pending operations synced")
		}
	case errors.Is(err, context.Canceled):
	default:
		j.logger.Warn().Err(err).
			Str("func", "clientSyncJob.tick").
			Int("synced", report.Synced).
			Int("failed", report.Failed).
			Msg("periodic sync incomplete")
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
