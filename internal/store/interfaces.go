package store

import (
	"context"

	"github.com/MKhiriev/lumina-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalNoteRepository is the durable local copy of the user's notes, keyed
// by ClientSideID. Get methods return [ErrEntityNotFound] for missing rows.
type LocalNoteRepository interface {
	GetNote(ctx context.Context, clientSideID string) (models.Note, error)
	GetNoteByServerID(ctx context.Context, id string) (models.Note, error)
	GetAllNotes(ctx context.Context) ([]models.Note, error)
	SaveNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, clientSideID string) error
	ClearNotes(ctx context.Context) error
}

// LocalPostRepository is the durable local copy of community posts.
type LocalPostRepository interface {
	GetPost(ctx context.Context, clientSideID string) (models.Post, error)
	GetPostByServerID(ctx context.Context, id string) (models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	SavePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, clientSideID string) error
	ClearPosts(ctx context.Context) error
}

// PendingOperationRepository persists queued mutations so they survive a
// restart. There is at most one row per (kind, client side id).
type PendingOperationRepository interface {
	SavePendingOperation(ctx context.Context, op models.PendingOperation) error
	DeletePendingOperation(ctx context.Context, kind models.EntityKind, clientSideID string) error
	GetPendingOperations(ctx context.Context, kind models.EntityKind) ([]models.PendingOperation, error)
	CountPendingOperations(ctx context.Context) (map[models.EntityKind]int, error)
}
