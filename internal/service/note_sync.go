package service

import (
	"context"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/adapter"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/parser"
	"github.com/MKhiriev/lumina-sync/internal/reconcile"
	"github.com/MKhiriev/lumina-sync/internal/store"
	"github.com/MKhiriev/lumina-sync/models"
)

type noteBinding struct {
	repo    store.LocalNoteRepository
	adapter adapter.ServerAdapter
}

func (noteBinding) kind() models.EntityKind { return models.KindNote }

func (noteBinding) clientSideID(n models.Note) string { return n.ClientSideID }
func (noteBinding) serverID(n models.Note) string     { return n.ID }
func (noteBinding) ownerID(n models.Note) string      { return n.OwnerID }

func (noteBinding) withServerID(n models.Note, id string) models.Note {
	n.ID = id
	return n
}

func (noteBinding) prepare(n models.Note, clientSideID, ownerID string, now time.Time) models.Note {
	n.ClientSideID = clientSideID
	n.ID = reconcile.NormalizeID(n.ID)
	n.OwnerID = ownerID
	n.Subject = reconcile.CanonicalCategory(n.Subject)
	now = now.UTC()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now
	return n
}

func (noteBinding) remoteID(r models.RemoteNote) string { return remoteID(r.ID) }

func (noteBinding) merge(local models.Note, r models.RemoteNote) models.Note {
	return mergeNote(local, r)
}

func (noteBinding) fromRemote(clientSideID string, r models.RemoteNote) models.Note {
	return noteFromRemote(clientSideID, r)
}

func (noteBinding) prunes() bool { return true }

func (b noteBinding) getLocal(ctx context.Context, clientSideID string) (models.Note, error) {
	return b.repo.GetNote(ctx, clientSideID)
}

func (b noteBinding) getLocalByServerID(ctx context.Context, id string) (models.Note, error) {
	return b.repo.GetNoteByServerID(ctx, id)
}

func (b noteBinding) listLocal(ctx context.Context) ([]models.Note, error) {
	return b.repo.GetAllNotes(ctx)
}

func (b noteBinding) saveLocal(ctx context.Context, n models.Note) error {
	return b.repo.SaveNote(ctx, n)
}

func (b noteBinding) deleteLocal(ctx context.Context, clientSideID string) error {
	return b.repo.DeleteNote(ctx, clientSideID)
}

func (b noteBinding) create(ctx context.Context, n models.Note) (models.RemoteNote, error) {
	body, err := b.adapter.CreateNote(ctx, notePayload(n))
	if err != nil {
		return models.RemoteNote{}, err
	}
	return parser.ParseNote(body)
}

func (b noteBinding) update(ctx context.Context, n models.Note) (models.RemoteNote, error) {
	body, err := b.adapter.UpdateNote(ctx, n.ID, notePayload(n))
	if err != nil {
		return models.RemoteNote{}, err
	}
	return parser.ParseNote(body)
}

func (b noteBinding) deleteRemote(ctx context.Context, id string) error {
	return b.adapter.DeleteNote(ctx, id)
}

func (b noteBinding) list(ctx context.Context) (parser.List[models.RemoteNote], error) {
	body, err := b.adapter.ListNotes(ctx)
	if err != nil {
		return parser.List[models.RemoteNote]{}, err
	}
	return parser.ParseNoteList(body)
}

// notePayload builds the request body; the category code is derived from
// the subject on every request.
func notePayload(n models.Note) models.NotePayload {
	p := models.NotePayload{
		ID:              n.ID,
		Title:           n.Title,
		Content:         n.Content,
		Subject:         reconcile.CanonicalCategory(n.Subject),
		CategoryID:      reconcile.CategoryCode(n.Subject),
		Tags:            nonNil(n.Tags),
		UserID:          n.OwnerID,
		Shared:          n.Shared,
		AttachmentPaths: nonNil(n.Attachments),
	}
	if !n.CreatedAt.IsZero() {
		created := n.CreatedAt.UTC()
		p.CreatedDate = &created
	}
	if !n.UpdatedAt.IsZero() {
		updated := n.UpdatedAt.UTC()
		p.LastModifiedDate = &updated
	}
	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type noteSyncService struct {
	*entitySync[models.Note, models.RemoteNote]
}

// NewNoteSyncService creates the note synchronizer. connectivity may be nil,
// in which case the server is assumed reachable.
func NewNoteSyncService(
	repo store.LocalNoteRepository,
	pendingRepo store.PendingOperationRepository,
	serverAdapter adapter.ServerAdapter,
	sessions SessionProvider,
	connectivity ConnectivityStatus,
	idGenerator func() string,
	logger *logger.Logger,
) NoteSynchronizer {
	return newNoteSyncService(repo, pendingRepo, serverAdapter, sessions, connectivity, idGenerator, logger)
}

func newNoteSyncService(
	repo store.LocalNoteRepository,
	pendingRepo store.PendingOperationRepository,
	serverAdapter adapter.ServerAdapter,
	sessions SessionProvider,
	connectivity ConnectivityStatus,
	idGenerator func() string,
	logger *logger.Logger,
) *noteSyncService {
	b := noteBinding{repo: repo, adapter: serverAdapter}
	return &noteSyncService{
		entitySync: newEntitySync[models.Note, models.RemoteNote](b, pendingRepo, sessions, connectivity, idGenerator, logger),
	}
}
