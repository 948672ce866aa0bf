package service

import (
	"context"
	"time"

	"github.com/MKhiriev/lumina-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionProvider answers the two questions the sync layer has about
// authentication: is a usable token available, and who is the user.
type SessionProvider interface {
	// Session returns the current session and false when nobody is signed
	// in or the token has expired.
	Session() (models.Session, bool)
}

// ConnectivityStatus reports whether the server is believed reachable.
// A nil ConnectivityStatus is treated as always online.
type ConnectivityStatus interface {
	Online() bool
}

// NoteSynchronizer keeps the local notes and the server in agreement.
//
// Every mutation is written to the local store first. When the server cannot
// be reached the mutation stays queued as a pending operation and the call
// still succeeds; SyncPending replays the queue later.
type NoteSynchronizer interface {
	// Save writes note locally and pushes it to the server. A note without a
	// server id is created, otherwise updated; an update answered with 404 is
	// retried as a create. The returned note carries the server id and the
	// values merged from the response.
	// Returns ErrAuthRequired without a session and ErrForbidden when the
	// note belongs to another user.
	Save(ctx context.Context, note models.Note) (models.Note, error)

	// Delete removes the note identified by its client side id or server id
	// locally and then on the server. A 404 from the server is success, and
	// the local removal is never rolled back.
	Delete(ctx context.Context, key string) error

	// FetchAll replaces the confirmed cache with the server's notes, upserts
	// them locally and removes local notes the server no longer has.
	FetchAll(ctx context.Context) (models.SyncReport, error)

	// SyncPending replays every queued note operation, oldest first.
	// Returns ErrSyncIncomplete when at least one operation failed.
	SyncPending(ctx context.Context) (models.SyncReport, error)

	// List returns the notes in the local store.
	List(ctx context.Context) ([]models.Note, error)

	// Confirmed returns the notes last confirmed by the server.
	Confirmed() []models.Note

	// Restore loads queued operations persisted by a previous run.
	Restore(ctx context.Context) error

	// PendingCount returns the number of queued note operations.
	PendingCount() int
}

// PostSynchronizer is the post counterpart of NoteSynchronizer, extended
// with the community features: likes, favorites and the hot ranking.
type PostSynchronizer interface {
	Save(ctx context.Context, post models.Post) (models.Post, error)
	Delete(ctx context.Context, key string) error
	FetchAll(ctx context.Context) (models.SyncReport, error)
	SyncPending(ctx context.Context) (models.SyncReport, error)
	List(ctx context.Context) ([]models.Post, error)
	Confirmed() []models.Post
	Restore(ctx context.Context) error
	PendingCount() int

	// SetLiked likes or un-likes a post for the session user. The local
	// state changes before the server call and is reverted exactly when the
	// call fails. Asking for the state the post is already in is not an
	// error: it reports ToggleAlreadyDone or ToggleNoChange.
	SetLiked(ctx context.Context, key string, liked bool) (models.ToggleOutcome, error)

	// SetFavorited behaves like SetLiked for the favorites set.
	SetFavorited(ctx context.Context, key string, favorited bool) (models.ToggleOutcome, error)

	// HotPosts returns up to limit posts ranked by the server. When the
	// ranking endpoint fails, known posts are sorted by like count and then
	// by creation time, newest first.
	HotPosts(ctx context.Context, limit int) ([]models.Post, error)

	// MyFavorites returns the posts favorited by the session user. When the
	// server refuses the favorites endpoint, the full post list is filtered
	// instead.
	MyFavorites(ctx context.Context) ([]models.Post, error)
}

// ClientSyncJob periodically replays pending operations in the background.
type ClientSyncJob interface {
	// Start launches the job. Calling Start again restarts it with the new
	// interval. A non-positive interval defaults to five minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit. It is safe to call
	// when the job is not running.
	Stop()
}
