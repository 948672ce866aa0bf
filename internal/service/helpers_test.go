package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/mock"
	"github.com/MKhiriev/lumina-sync/internal/store"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSession = models.Session{UserID: "u1", Token: "token"}

// fakeNetwork is a switchable ConnectivityStatus.
type fakeNetwork struct {
	down atomic.Bool
}

func (n *fakeNetwork) Online() bool {
	return !n.down.Load()
}

func sequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

func openStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "lumina.db")
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

// syncHarness wires both synchronizers to a real SQLite store and a mocked
// server.
type syncHarness struct {
	adapter  *mock.MockServerAdapter
	storages *store.ClientStorages
	network  *fakeNetwork
	sessions *mock.MockSessionProvider
	notes    *noteSyncService
	posts    *postSyncService
}

func newSyncHarness(t *testing.T) *syncHarness {
	t.Helper()

	ctrl := gomock.NewController(t)
	h := &syncHarness{
		adapter:  mock.NewMockServerAdapter(ctrl),
		storages: openStorages(t),
		network:  &fakeNetwork{},
		sessions: mock.NewMockSessionProvider(ctrl),
	}
	h.sessions.EXPECT().Session().Return(testSession, true).AnyTimes()

	h.notes = newNoteSyncService(h.storages.NoteRepository, h.storages.PendingOperationRepository,
		h.adapter, h.sessions, h.network, sequentialIDs("n"), logger.Nop())
	h.posts = newPostSyncService(h.storages.PostRepository, h.storages.PendingOperationRepository,
		h.adapter, h.sessions, h.network, sequentialIDs("p"), 20, logger.Nop())

	return h
}

func (h *syncHarness) seedNotes(t *testing.T, notes ...models.Note) {
	t.Helper()
	for _, n := range notes {
		require.NoError(t, h.storages.NoteRepository.SaveNote(context.Background(), n))
	}
}

func (h *syncHarness) seedPosts(t *testing.T, posts ...models.Post) {
	t.Helper()
	for _, p := range posts {
		require.NoError(t, h.storages.PostRepository.SavePost(context.Background(), p))
	}
}

func (h *syncHarness) localNoteIDs(t *testing.T) map[string]string {
	t.Helper()
	notes, err := h.storages.NoteRepository.GetAllNotes(context.Background())
	require.NoError(t, err)

	ids := make(map[string]string, len(notes))
	for _, n := range notes {
		ids[n.ClientSideID] = n.ID
	}
	return ids
}
