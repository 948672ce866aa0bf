// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/service"
	"github.com/MKhiriev/lumina-sync/models"
)

// ConnectivityTrigger drains pending work when the network comes back.
//
// A trigger fires on an offline to online transition, at most once per
// debounce window, only while a session exists and only when the
// coordinator has nothing in flight. A run is a note refresh followed by a
// replay of both pending queues.
type ConnectivityTrigger struct {
	coordinator SyncCoordinator
	sessions    service.SessionProvider
	changes     <-chan bool
	debounce    time.Duration
	now         func() time.Time

	mu          sync.Mutex
	wasOffline  bool
	lastTrigger time.Time

	syncing atomic.Bool
	wg      sync.WaitGroup
	synced  broadcaster[models.SyncReport]

	logger *logger.Logger
}

// NewConnectivityTrigger creates a trigger fed by changes, usually
// ConnectivityMonitor.Subscribe. changes may be nil when the caller drives
// HandleChange directly.
func NewConnectivityTrigger(
	coordinator SyncCoordinator,
	sessions service.SessionProvider,
	changes <-chan bool,
	cfg config.ClientSync,
	logger *logger.Logger,
) *ConnectivityTrigger {
	return &ConnectivityTrigger{
		coordinator: coordinator,
		sessions:    sessions,
		changes:     changes,
		debounce:    cfg.DebounceWindow,
		now:         time.Now,
		logger:      logger,
	}
}

// Subscribe returns a channel receiving the report of every trigger run
// that finished without error.
func (t *ConnectivityTrigger) Subscribe() <-chan models.SyncReport {
	return t.synced.Subscribe()
}

// HandleChange records a connectivity change and reports whether it
// started a sync run. The run itself continues in the background.
func (t *ConnectivityTrigger) HandleChange(ctx context.Context, online bool) bool {
	log := t.logger.With().Str("func", "ConnectivityTrigger.HandleChange").Logger()

	t.mu.Lock()
	if !online {
		t.wasOffline = true
		t.mu.Unlock()
		return false
	}
	if !t.wasOffline {
		t.mu.Unlock()
		return false
	}
	t.wasOffline = false

	now := t.now()
	if !t.lastTrigger.IsZero() && now.Sub(t.lastTrigger) < t.debounce {
		t.mu.Unlock()
		log.Debug().Dur("debounce", t.debounce).Msg("back online within debounce window, skipping")
		return false
	}
	t.mu.Unlock()

	if sess, ok := t.sessions.Session(); !ok || sess.Token == "" || sess.UserID == "" {
		log.Debug().Msg("back online without a session, skipping")
		return false
	}
	if t.coordinator.HasPendingOperations() {
		log.Debug().Msg("coordinator busy, skipping")
		return false
	}
	if !t.syncing.CompareAndSwap(false, true) {
		log.Debug().Msg("trigger run already in progress")
		return false
	}

	t.mu.Lock()
	t.lastTrigger = now
	t.mu.Unlock()

	log.Info().Msg("back online, syncing")

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer t.syncing.Store(false)

		report, err := service.Await(ctx, t.coordinator.RefreshAndSync(ctx))
		if err != nil {
			// a failed background sync never ends the session
			log.Warn().Err(err).
				Int("synced", report.Synced).
				Int("failed", report.Failed).
				Msg("trigger run incomplete")
			return
		}

		log.Info().
			Int("synced", report.Synced).
			Int("deleted", report.Deleted).
			Int("skipped", report.Skipped).
			Msg("trigger run finished")
		t.synced.Publish(report)
	}()

	return true
}

// Run consumes connectivity changes until ctx is done or the channel is
// closed, then waits for a running sync to finish.
func (t *ConnectivityTrigger) Run(ctx context.Context) {
	defer t.synced.Close()
	defer t.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case online, ok := <-t.changes:
			if !ok {
				return
			}
			t.HandleChange(ctx, online)
		}
	}
}

// Wait blocks until the running trigger run, if any, has finished.
func (t *ConnectivityTrigger) Wait() {
	t.wg.Wait()
}
