// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/utils"
	"github.com/MKhiriev/lumina-sync/models"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	defaultOperationTimeout = 30 * time.Second
	defaultMaxConcurrent    = 4
)

// Outcome is the single result of a dispatched operation.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Coordinator runs synchronizer calls on background workers, each with its
// own deadline, and counts the operations that have not finished yet.
type Coordinator struct {
	notes NoteSynchronizer
	posts PostSynchronizer

	timeout time.Duration
	sem     *semaphore.Weighted
	active  atomic.Int64

	logger *logger.Logger
}

func NewCoordinator(notes NoteSynchronizer, posts PostSynchronizer, cfg config.ClientSync, logger *logger.Logger) *Coordinator {
	timeout := cfg.OperationTimeout
	if timeout <= 0 {
		timeout = defaultOperationTimeout
	}
	workers := cfg.MaxConcurrent
	if workers <= 0 {
		workers = defaultMaxConcurrent
	}

	return &Coordinator{
		notes:   notes,
		posts:   posts,
		timeout: timeout,
		sem:     semaphore.NewWeighted(int64(workers)),
		logger:  logger,
	}
}

// Dispatch runs fn on a background goroutine under a deadline of timeout
// and returns a channel that receives exactly one Outcome.
//
// The operation counter is incremented before fn starts. Whichever comes
// first, fn returning or the deadline firing, delivers the outcome and
// decrements the counter; the other path becomes a no-op. When the
// deadline wins the outcome carries ErrTimeout and fn's context is
// cancelled; fn's late result is discarded.
func Dispatch[T any](c *Coordinator, ctx context.Context, name string, timeout time.Duration, fn func(ctx context.Context) (T, error)) <-chan Outcome[T] {
	out := make(chan Outcome[T], 1)

	c.active.Add(1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	opLogger := c.logger.With().Str("operation", name).Logger()
	opCtx = opLogger.WithContext(utils.WithOperation(opCtx, name))

	var once sync.Once
	finish := func(v T, err error) {
		once.Do(func() {
			c.active.Add(-1)
			cancel()
			out <- Outcome[T]{Value: v, Err: err}
			close(out)
		})
	}

	go func() {
		<-opCtx.Done()
		var zero T
		switch {
		case errors.Is(opCtx.Err(), context.DeadlineExceeded):
			c.logger.Warn().
				Str("func", "Dispatch").
				Str("operation", name).
				Dur("timeout", timeout).
				Msg("operation timed out")
			finish(zero, fmt.Errorf("%w: %s after %s", ErrTimeout, name, timeout))
		case ctx.Err() != nil:
			finish(zero, ctx.Err())
		}
	}()

	go func() {
		if err := c.sem.Acquire(opCtx, 1); err != nil {
			return
		}
		defer c.sem.Release(1)

		v, err := fn(opCtx)
		finish(v, err)
	}()

	return out
}

// Await blocks until ch delivers or ctx is done.
func Await[T any](ctx context.Context, ch <-chan Outcome[T]) (T, error) {
	select {
	case o := <-ch:
		return o.Value, o.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// HasPendingOperations reports whether any dispatched operation is still
// running.
func (c *Coordinator) HasPendingOperations() bool {
	return c.active.Load() > 0
}

// PendingCount returns the number of dispatched operations still running.
func (c *Coordinator) PendingCount() int {
	return int(c.active.Load())
}

// QueuedOperations returns the number of pending operations per kind that
// wait for the server.
func (c *Coordinator) QueuedOperations() map[models.EntityKind]int {
	return map[models.EntityKind]int{
		models.KindNote: c.notes.PendingCount(),
		models.KindPost: c.posts.PendingCount(),
	}
}

func (c *Coordinator) SaveNote(ctx context.Context, note models.Note) <-chan Outcome[models.Note] {
	return Dispatch(c, ctx, "notes.save", c.timeout, func(ctx context.Context) (models.Note, error) {
		return c.notes.Save(ctx, note)
	})
}

func (c *Coordinator) DeleteNote(ctx context.Context, key string) <-chan Outcome[struct{}] {
	return Dispatch(c, ctx, "notes.delete", c.timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.notes.Delete(ctx, key)
	})
}

func (c *Coordinator) FetchNotes(ctx context.Context) <-chan Outcome[models.SyncReport] {
	return Dispatch(c, ctx, "notes.fetch", c.timeout, c.notes.FetchAll)
}

func (c *Coordinator) SyncPendingNotes(ctx context.Context) <-chan Outcome[models.SyncReport] {
	return Dispatch(c, ctx, "notes.sync_pending", c.timeout, c.notes.SyncPending)
}

func (c *Coordinator) SavePost(ctx context.Context, post models.Post) <-chan Outcome[models.Post] {
	return Dispatch(c, ctx, "posts.save", c.timeout, func(ctx context.Context) (models.Post, error) {
		return c.posts.Save(ctx, post)
	})
}

func (c *Coordinator) DeletePost(ctx context.Context, key string) <-chan Outcome[struct{}] {
	return Dispatch(c, ctx, "posts.delete", c.timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.posts.Delete(ctx, key)
	})
}

func (c *Coordinator) FetchPosts(ctx context.Context) <-chan Outcome[models.SyncReport] {
	return Dispatch(c, ctx, "posts.fetch", c.timeout, c.posts.FetchAll)
}

func (c *Coordinator) SyncPendingPosts(ctx context.Context) <-chan Outcome[models.SyncReport] {
	return Dispatch(c, ctx, "posts.sync_pending", c.timeout, c.posts.SyncPending)
}

func (c *Coordinator) SetLiked(ctx context.Context, key string, liked bool) <-chan Outcome[models.ToggleOutcome] {
	return Dispatch(c, ctx, "posts.like", c.timeout, func(ctx context.Context) (models.ToggleOutcome, error) {
		return c.posts.SetLiked(ctx, key, liked)
	})
}

func (c *Coordinator) SetFavorited(ctx context.Context, key string, favorited bool) <-chan Outcome[models.ToggleOutcome] {
	return Dispatch(c, ctx, "posts.favorite", c.timeout, func(ctx context.Context) (models.ToggleOutcome, error) {
		return c.posts.SetFavorited(ctx, key, favorited)
	})
}

func (c *Coordinator) HotPosts(ctx context.Context, limit int) <-chan Outcome[[]models.Post] {
	return Dispatch(c, ctx, "posts.hot", c.timeout, func(ctx context.Context) ([]models.Post, error) {
		return c.posts.HotPosts(ctx, limit)
	})
}

func (c *Coordinator) MyFavorites(ctx context.Context) <-chan Outcome[[]models.Post] {
	return Dispatch(c, ctx, "posts.favorites", c.timeout, c.posts.MyFavorites)
}

// SyncAllPending replays the note and post queues concurrently under the
// compound deadline.
func (c *Coordinator) SyncAllPending(ctx context.Context) <-chan Outcome[models.SyncReport] {
	return Dispatch(c, ctx, "sync_pending", 2*c.timeout, c.syncAllPending)
}

// RefreshAndSync fetches the notes and then replays both queues. When the
// fetch fails the queues are still replayed so local changes get out.
func (c *Coordinator) RefreshAndSync(ctx context.Context) <-chan Outcome[models.SyncReport] {
	return Dispatch(c, ctx, "refresh_and_sync", 2*c.timeout, func(ctx context.Context) (models.SyncReport, error) {
		log := logger.FromContextOr(ctx, c.logger)

		report, err := c.notes.FetchAll(ctx)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "Coordinator.RefreshAndSync").
				Msg("note refresh failed, syncing pending operations only")
			report = models.SyncReport{Kind: models.KindNote}
		}

		pending, err := c.syncAllPending(ctx)
		report.Add(pending)
		return report, err
	})
}

func (c *Coordinator) syncAllPending(ctx context.Context) (models.SyncReport, error) {
	var (
		notes, posts       models.SyncReport
		notesErr, postsErr error
		g                  errgroup.Group
	)

	// a failing queue must not cancel the other one
	g.Go(func() error {
		notes, notesErr = c.notes.SyncPending(ctx)
		return nil
	})
	g.Go(func() error {
		posts, postsErr = c.posts.SyncPending(ctx)
		return nil
	})
	_ = g.Wait()

	notes.Add(posts)
	return notes, errors.Join(notesErr, postsErr)
}
