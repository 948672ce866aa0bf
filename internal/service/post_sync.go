package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/adapter"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/parser"
	"github.com/MKhiriev/lumina-sync/internal/reconcile"
	"github.com/MKhiriev/lumina-sync/internal/store"
	"github.com/MKhiriev/lumina-sync/models"
)

const defaultHotPostsLimit = 20

type postBinding struct {
	repo    store.LocalPostRepository
	adapter adapter.ServerAdapter
}

func (postBinding) kind() models.EntityKind { return models.KindPost }

func (postBinding) clientSideID(p models.Post) string { return p.ClientSideID }
func (postBinding) serverID(p models.Post) string     { return p.ID }
func (postBinding) ownerID(p models.Post) string      { return p.OwnerID }

func (postBinding) withServerID(p models.Post, id string) models.Post {
	p.ID = id
	return p
}

func (postBinding) prepare(p models.Post, clientSideID, ownerID string, now time.Time) models.Post {
	p.ClientSideID = clientSideID
	p.ID = reconcile.NormalizeID(p.ID)
	p.OwnerID = ownerID
	p.Subject = reconcile.CanonicalCategory(p.Subject)
	p.LikedBy = normalizeIDs(p.LikedBy)
	p.FavoritedBy = normalizeIDs(p.FavoritedBy)
	now = now.UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return p
}

func (postBinding) remoteID(r models.RemotePost) string { return remoteID(r.ID) }

func (postBinding) merge(local models.Post, r models.RemotePost) models.Post {
	return mergePost(local, r)
}

func (postBinding) fromRemote(clientSideID string, r models.RemotePost) models.Post {
	return postFromRemote(clientSideID, r)
}

// the feed is shared, so a post missing from one listing is not proof
// that it was deleted
func (postBinding) prunes() bool { return false }

func (b postBinding) getLocal(ctx context.Context, clientSideID string) (models.Post, error) {
	return b.repo.GetPost(ctx, clientSideID)
}

func (b postBinding) getLocalByServerID(ctx context.Context, id string) (models.Post, error) {
	return b.repo.GetPostByServerID(ctx, id)
}

func (b postBinding) listLocal(ctx context.Context) ([]models.Post, error) {
	return b.repo.GetAllPosts(ctx)
}

func (b postBinding) saveLocal(ctx context.Context, p models.Post) error {
	return b.repo.SavePost(ctx, p)
}

func (b postBinding) deleteLocal(ctx context.Context, clientSideID string) error {
	return b.repo.DeletePost(ctx, clientSideID)
}

func (b postBinding) create(ctx context.Context, p models.Post) (models.RemotePost, error) {
	body, err := b.adapter.CreatePost(ctx, postPayload(p))
	if err != nil {
		return models.RemotePost{}, err
	}
	return parser.ParsePost(body)
}

func (b postBinding) update(ctx context.Context, p models.Post) (models.RemotePost, error) {
	body, err := b.adapter.UpdatePost(ctx, p.ID, postPayload(p))
	if err != nil {
		return models.RemotePost{}, err
	}
	return parser.ParsePost(body)
}

func (b postBinding) deleteRemote(ctx context.Context, id string) error {
	return b.adapter.DeletePost(ctx, id)
}

func (b postBinding) list(ctx context.Context) (parser.List[models.RemotePost], error) {
	body, err := b.adapter.ListPosts(ctx)
	if err != nil {
		return parser.List[models.RemotePost]{}, err
	}
	return parser.ParsePostList(body)
}

func postPayload(p models.Post) models.PostPayload {
	payload := models.PostPayload{
		ID:              p.ID,
		Title:           p.Title,
		Content:         p.Content,
		Subject:         reconcile.CanonicalCategory(p.Subject),
		CategoryID:      reconcile.CategoryCode(p.Subject),
		UserID:          p.OwnerID,
		AttachmentPaths: nonNil(p.Attachments),
	}
	if !p.CreatedAt.IsZero() {
		created := p.CreatedAt.UTC()
		payload.CreatedAt = &created
	}
	return payload
}

type postSyncService struct {
	*entitySync[models.Post, models.RemotePost]

	adapter  adapter.ServerAdapter
	hotLimit int

	// socialMu serializes the read-modify-write of like and favorite sets.
	socialMu sync.Mutex
}

// NewPostSyncService creates the post synchronizer. hotLimit is used by
// HotPosts when the caller passes no limit.
func NewPostSyncService(
	repo store.LocalPostRepository,
	pendingRepo store.PendingOperationRepository,
	serverAdapter adapter.ServerAdapter,
	sessions SessionProvider,
	connectivity ConnectivityStatus,
	idGenerator func() string,
	hotLimit int,
	logger *logger.Logger,
) PostSynchronizer {
	return newPostSyncService(repo, pendingRepo, serverAdapter, sessions, connectivity, idGenerator, hotLimit, logger)
}

func newPostSyncService(
	repo store.LocalPostRepository,
	pendingRepo store.PendingOperationRepository,
	serverAdapter adapter.ServerAdapter,
	sessions SessionProvider,
	connectivity ConnectivityStatus,
	idGenerator func() string,
	hotLimit int,
	logger *logger.Logger,
) *postSyncService {
	if hotLimit <= 0 {
		hotLimit = defaultHotPostsLimit
	}
	b := postBinding{repo: repo, adapter: serverAdapter}
	return &postSyncService{
		entitySync: newEntitySync[models.Post, models.RemotePost](b, pendingRepo, sessions, connectivity, idGenerator, logger),
		adapter:    serverAdapter,
		hotLimit:   hotLimit,
	}
}
