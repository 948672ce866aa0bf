package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/lumina-sync/internal/adapter"
	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/store"
	"github.com/MKhiriev/lumina-sync/internal/utils"
)

type ClientServices struct {
	Notes       NoteSynchronizer
	Posts       PostSynchronizer
	Coordinator *Coordinator
	SyncJob     ClientSyncJob
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	sessions SessionProvider,
	connectivity ConnectivityStatus,
	cfg config.ClientSync,
	logger *logger.Logger,
) *ClientServices {
	ids := utils.NewUUIDGenerator()

	notes := NewNoteSyncService(storages.NoteRepository, storages.PendingOperationRepository,
		serverAdapter, sessions, connectivity, ids.Generate, logger)
	posts := NewPostSyncService(storages.PostRepository, storages.PendingOperationRepository,
		serverAdapter, sessions, connectivity, ids.Generate, cfg.HotPostsLimit, logger)
	coordinator := NewCoordinator(notes, posts, cfg, logger)

	return &ClientServices{
		Notes:       notes,
		Posts:       posts,
		Coordinator: coordinator,
		SyncJob:     NewClientSyncJob(coordinator, logger),
	}
}

// Restore reloads the pending operations of both synchronizers.
func (s *ClientServices) Restore(ctx context.Context) error {
	return errors.Join(s.Notes.Restore(ctx), s.Posts.Restore(ctx))
}
