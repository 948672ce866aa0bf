// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/adapter"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/mock"
	"github.com/MKhiriev/lumina-sync/internal/store"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDial = fmt.Errorf("POST /api/notes: %w: connection refused", adapter.ErrNetwork)

// ── Save ─────────────────────────────────────────────────────────────────────

func TestNoteSync_SaveOffline_ThenSyncPendingAssignsServerID(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.network.down.Store(true)

	saved, err := h.notes.Save(ctx, models.Note{Title: "T", Content: "C", Subject: "Math"})
	require.NoError(t, err)
	assert.Empty(t, saved.ID)
	assert.Equal(t, "n-1", saved.ClientSideID)
	assert.Equal(t, "u1", saved.OwnerID)
	assert.Equal(t, 1, h.notes.PendingCount())

	local, err := h.storages.NoteRepository.GetNote(ctx, saved.ClientSideID)
	require.NoError(t, err)
	assert.Empty(t, local.ID)
	assert.Equal(t, "T", local.Title)

	// сеть вернулась
	h.network.down.Store(false)
	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.NotePayload) ([]byte, error) {
			assert.Empty(t, p.ID)
			assert.Equal(t, "Math", p.Subject)
			assert.Equal(t, 2, p.CategoryID)
			assert.Equal(t, "u1", p.UserID)
			return []byte(`{"note":{"id":101.0,"title":"T","categoryId":2}}`), nil
		})

	report, err := h.notes.SyncPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	assert.Zero(t, h.notes.PendingCount())

	local, err = h.storages.NoteRepository.GetNote(ctx, saved.ClientSideID)
	require.NoError(t, err)
	assert.Equal(t, "101", local.ID)
	assert.Equal(t, "C", local.Content)
	assert.Equal(t, "Math", local.Subject)

	counts, err := h.storages.PendingOperationRepository.CountPendingOperations(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts[models.KindNote])
}

func TestNoteSync_Save_OnlineCreate(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		Return([]byte(`{"id":"42","title":"T","content":"C","subject":"物理","createdDate":"2025-03-01 10:00:00"}`), nil)

	saved, err := h.notes.Save(ctx, models.Note{Title: "T", Content: "C", Subject: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, "42", saved.ID)
	assert.Equal(t, "Physics", saved.Subject)
	assert.True(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC).Equal(saved.CreatedAt), saved.CreatedAt)
	assert.Zero(t, h.notes.PendingCount())

	require.Len(t, h.notes.Confirmed(), 1)
	assert.Equal(t, "42", h.notes.Confirmed()[0].ID)
}

func TestNoteSync_Save_UpdateResponseMissingContentKeepsLocalValue(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t, models.Note{ClientSideID: "c-9", ID: "9", OwnerID: "u1", Title: "T", Content: "C", Subject: "Physics"})

	h.adapter.EXPECT().UpdateNote(gomock.Any(), "9", gomock.Any()).
		Return([]byte(`{"id":"9","title":"T2","categoryId":10}`), nil)

	saved, err := h.notes.Save(ctx, models.Note{ClientSideID: "c-9", ID: "9", Title: "T2", Content: "C2", Subject: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, "T2", saved.Title)
	assert.Equal(t, "C2", saved.Content, "content absent from the response keeps the local value")
	assert.Equal(t, "Physics", saved.Subject, "Other from the server does not replace a known category")

	local, err := h.storages.NoteRepository.GetNote(ctx, "c-9")
	require.NoError(t, err)
	assert.Equal(t, "C2", local.Content)
}

func TestNoteSync_Save_UpdateNotFoundFallsBackToCreate(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t, models.Note{ClientSideID: "c-9", ID: "9", OwnerID: "u1", Title: "T"})

	gomock.InOrder(
		h.adapter.EXPECT().UpdateNote(gomock.Any(), "9", gomock.Any()).Return(nil, adapter.NewStatusError(404, "")),
		h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.NotePayload) ([]byte, error) {
				assert.Empty(t, p.ID)
				return []byte(`{"data":{"id":"77"}}`), nil
			}),
	)

	saved, err := h.notes.Save(ctx, models.Note{ClientSideID: "c-9", ID: "9", Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "77", saved.ID)
	assert.Equal(t, map[string]string{"c-9": "77"}, h.localNoteIDs(t))
}

func TestNoteSync_Save_KeepsServerIDOfExistingLocalNote(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t, models.Note{ClientSideID: "c-9", ID: "9", OwnerID: "u1", Title: "T"})

	// правка по локальному ключу без id не должна создавать дубликат
	h.adapter.EXPECT().UpdateNote(gomock.Any(), "9", gomock.Any()).Return([]byte(`{"id":9}`), nil)

	saved, err := h.notes.Save(ctx, models.Note{ClientSideID: "c-9", Title: "T2"})
	require.NoError(t, err)
	assert.Equal(t, "9", saved.ID)
}

func TestNoteSync_Save_NetworkErrorQueues(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(nil, errDial)

	saved, err := h.notes.Save(ctx, models.Note{Title: "T"})
	require.NoError(t, err)
	assert.Empty(t, saved.ID)
	assert.Equal(t, 1, h.notes.PendingCount())

	op, _, ok := h.notes.pending.Get(saved.ClientSideID)
	require.True(t, ok)
	assert.Equal(t, 1, op.Attempts)
	assert.Contains(t, op.LastError, "connection refused")
}

func TestNoteSync_Save_ServerErrorIsReturnedAndStaysQueued(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(nil, adapter.NewStatusError(500, "boom"))

	saved, err := h.notes.Save(ctx, models.Note{Title: "T"})
	require.ErrorIs(t, err, ErrServer)
	assert.Equal(t, 500, adapter.StatusCode(err))
	assert.Equal(t, 1, h.notes.PendingCount())

	// локальная правка не откатывается
	local, err := h.storages.NoteRepository.GetNote(ctx, saved.ClientSideID)
	require.NoError(t, err)
	assert.Equal(t, "T", local.Title)
}

func TestNoteSync_Save_UnreadableResponse(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return([]byte(`{"status":"ok"}`), nil).Times(1)

	saved, err := h.notes.Save(ctx, models.Note{Title: "T"})
	require.ErrorIs(t, err, ErrParse)
	assert.Equal(t, 1, h.notes.PendingCount())

	op, _, ok := h.notes.pending.Get(saved.ClientSideID)
	require.True(t, ok)
	assert.True(t, op.Paused)

	// сервер мог создать заметку, повторный create не отправляется
	report, err := h.notes.SyncPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Zero(t, report.Synced)

	stored, err := h.storages.PendingOperationRepository.GetPendingOperations(ctx, models.KindNote)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Paused)
}

func TestNoteSync_PausedCreateResumesOnNextEdit(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	gomock.InOrder(
		h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return([]byte(`{"note":{}}`), nil),
		h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return([]byte(`{"id":"77","title":"v2"}`), nil),
	)

	first, err := h.notes.Save(ctx, models.Note{Title: "v1"})
	require.ErrorIs(t, err, ErrParse)

	second, err := h.notes.Save(ctx, models.Note{ClientSideID: first.ClientSideID, Title: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "77", second.ID)
	assert.Zero(t, h.notes.PendingCount())
}

func TestNoteSync_UnreadableUpdateResponseIsNotPaused(t *testing.T) {
	h := newSyncHarness(t)
	h.seedNotes(t, models.Note{ClientSideID: "c-1", ID: "9", OwnerID: "u1", Title: "old"})

	h.adapter.EXPECT().UpdateNote(gomock.Any(), "9", gomock.Any()).Return([]byte(`not json`), nil)

	_, err := h.notes.Save(context.Background(), models.Note{ClientSideID: "c-1", Title: "new"})
	require.ErrorIs(t, err, ErrParse)

	op, _, ok := h.notes.pending.Get("c-1")
	require.True(t, ok)
	assert.False(t, op.Paused, "an update is safe to replay")
}

// idWritesFail stores notes normally until they carry a server id.
type idWritesFail struct {
	store.LocalNoteRepository
	broken atomic.Bool
}

func (r *idWritesFail) SaveNote(ctx context.Context, n models.Note) error {
	if n.ID != "" && r.broken.Load() {
		return store.ErrExecutingStatement
	}
	return r.LocalNoteRepository.SaveNote(ctx, n)
}

func TestNoteSync_ConfirmKeepsQueueWhenLocalWriteFails(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	repo := &idWritesFail{LocalNoteRepository: h.storages.NoteRepository}
	repo.broken.Store(true)
	notes := newNoteSyncService(repo, h.storages.PendingOperationRepository,
		h.adapter, h.sessions, h.network, sequentialIDs("n"), logger.Nop())

	h.network.down.Store(true)
	saved, err := notes.Save(ctx, models.Note{Title: "T"})
	require.NoError(t, err)
	h.network.down.Store(false)

	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return([]byte(`{"id":"101","title":"T"}`), nil).Times(1)

	report, err := notes.SyncPending(ctx)
	require.ErrorIs(t, err, ErrSyncIncomplete)
	require.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.Equal(t, 1, report.Failed)
	assert.Zero(t, report.Synced)

	// операция остаётся в очереди и уже знает серверный id
	op, _, ok := notes.pending.Get(saved.ClientSideID)
	require.True(t, ok)
	assert.Equal(t, 1, op.Attempts)
	var snapshot models.Note
	require.NoError(t, json.Unmarshal(op.Snapshot, &snapshot))
	assert.Equal(t, "101", snapshot.ID)
	assert.Empty(t, notes.Confirmed())

	// после починки хранилища повтор обновляет, а не создаёт заново
	repo.broken.Store(false)
	h.adapter.EXPECT().UpdateNote(gomock.Any(), "101", gomock.Any()).Return([]byte(`{"id":"101","title":"T"}`), nil)

	report, err = notes.SyncPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	assert.Zero(t, notes.PendingCount())
	assert.Equal(t, map[string]string{saved.ClientSideID: "101"}, h.localNoteIDs(t))
}

func TestNoteSync_FetchAllDuringCreateKeepsOneLocalRow(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	h.adapter.EXPECT().ListNotes(gomock.Any()).Return([]byte(`[{"id":"101","title":"T"}]`), nil).Times(2)
	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.NotePayload) ([]byte, error) {
			// список с сервера приходит раньше ответа на создание
			_, err := h.notes.FetchAll(ctx)
			assert.NoError(t, err)
			return []byte(`{"id":"101","title":"T"}`), nil
		})

	saved, err := h.notes.Save(ctx, models.Note{Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "101", saved.ID)
	assert.Zero(t, h.notes.PendingCount())
	assert.Equal(t, map[string]string{"n-1": "101"}, h.localNoteIDs(t))

	report, err := h.notes.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	assert.Equal(t, map[string]string{"n-1": "101"}, h.localNoteIDs(t))
}

func TestNoteSync_ConfirmReplacesLocalCopyUnderOtherID(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t, models.Note{ClientSideID: "c-copy", ID: "101", OwnerID: "u1", Title: "T"})

	h.network.down.Store(true)
	saved, err := h.notes.Save(ctx, models.Note{Title: "T"})
	require.NoError(t, err)
	h.network.down.Store(false)

	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return([]byte(`{"id":"101","title":"T"}`), nil)

	_, err = h.notes.SyncPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{saved.ClientSideID: "101"}, h.localNoteIDs(t))
}

func TestNoteSync_Save_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionProvider(ctrl)
	sessions.EXPECT().Session().Return(models.Session{}, false)
	repo := mock.NewMockLocalNoteRepository(ctrl)
	pending := mock.NewMockPendingOperationRepository(ctrl)

	svc := NewNoteSyncService(repo, pending, mock.NewMockServerAdapter(ctrl), sessions, nil, sequentialIDs("n"), logger.Nop())

	_, err := svc.Save(context.Background(), models.Note{Title: "T"})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestNoteSync_Save_ForeignOwnerIsForbidden(t *testing.T) {
	h := newSyncHarness(t)

	_, err := h.notes.Save(context.Background(), models.Note{Title: "T", OwnerID: "u2"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, h.localNoteIDs(t))
}

func TestNoteSync_Save_LocalStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionProvider(ctrl)
	sessions.EXPECT().Session().Return(testSession, true)
	repo := mock.NewMockLocalNoteRepository(ctrl)
	repo.EXPECT().SaveNote(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	svc := NewNoteSyncService(repo, mock.NewMockPendingOperationRepository(ctrl), mock.NewMockServerAdapter(ctrl),
		sessions, nil, sequentialIDs("n"), logger.Nop())

	_, err := svc.Save(context.Background(), models.Note{Title: "T"})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestNoteSync_Save_LastWriteWinsWhileOffline(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.network.down.Store(true)

	first, err := h.notes.Save(ctx, models.Note{Title: "v1"})
	require.NoError(t, err)
	_, err = h.notes.Save(ctx, models.Note{ClientSideID: first.ClientSideID, Title: "v2"})
	require.NoError(t, err)

	assert.Equal(t, 1, h.notes.PendingCount())
	op, _, ok := h.notes.pending.Get(first.ClientSideID)
	require.True(t, ok)

	var snapshot models.Note
	require.NoError(t, json.Unmarshal(op.Snapshot, &snapshot))
	assert.Equal(t, "v2", snapshot.Title)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestNoteSync_Delete_NotFoundOnServerIsSuccess(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t, models.Note{ClientSideID: "c-55", ID: "55", OwnerID: "u1"})

	h.adapter.EXPECT().DeleteNote(gomock.Any(), "55").Return(adapter.NewStatusError(404, "gone"))

	require.NoError(t, h.notes.Delete(ctx, "55"))

	_, err := h.storages.NoteRepository.GetNote(ctx, "c-55")
	assert.ErrorIs(t, err, store.ErrEntityNotFound)
	assert.Zero(t, h.notes.PendingCount())
}

func TestNoteSync_Delete_ServerErrorKeepsLocalDeletion(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t, models.Note{ClientSideID: "c-1", ID: "1", OwnerID: "u1"})

	h.adapter.EXPECT().DeleteNote(gomock.Any(), "1").Return(adapter.NewStatusError(502, ""))

	err := h.notes.Delete(ctx, "c-1")
	require.ErrorIs(t, err, ErrServer)
	assert.Empty(t, h.localNoteIDs(t))
	assert.Equal(t, 1, h.notes.PendingCount(), "5xx is retried later")
}

func TestNoteSync_Delete_RejectedIsNotRetried(t *testing.T) {
	h := newSyncHarness(t)
	h.seedNotes(t, models.Note{ClientSideID: "c-1", ID: "1", OwnerID: "u1"})

	h.adapter.EXPECT().DeleteNote(gomock.Any(), "1").Return(adapter.NewStatusError(403, ""))

	err := h.notes.Delete(context.Background(), "c-1")
	require.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, h.localNoteIDs(t))
	assert.Zero(t, h.notes.PendingCount())
}

func TestNoteSync_Delete_ForeignOwner(t *testing.T) {
	h := newSyncHarness(t)
	h.seedNotes(t, models.Note{ClientSideID: "c-1", ID: "1", OwnerID: "u2"})

	err := h.notes.Delete(context.Background(), "c-1")
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, map[string]string{"c-1": "1"}, h.localNoteIDs(t))
}

func TestNoteSync_Delete_OfflineThenReplay(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t, models.Note{ClientSideID: "c-1", ID: "1", OwnerID: "u1"})
	h.network.down.Store(true)

	require.NoError(t, h.notes.Delete(ctx, "c-1"))
	assert.Empty(t, h.localNoteIDs(t))
	assert.Equal(t, 1, h.notes.PendingCount())

	h.network.down.Store(false)
	h.adapter.EXPECT().DeleteNote(gomock.Any(), "1").Return(nil)

	report, err := h.notes.SyncPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	assert.Zero(t, h.notes.PendingCount())
}

func TestNoteSync_Delete_UnsyncedNoteNeverReachesServer(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.network.down.Store(true)

	saved, err := h.notes.Save(ctx, models.Note{Title: "draft"})
	require.NoError(t, err)
	h.network.down.Store(false)

	// ни одного вызова адаптера не ожидается
	require.NoError(t, h.notes.Delete(ctx, saved.ClientSideID))
	assert.Zero(t, h.notes.PendingCount())
	assert.Empty(t, h.localNoteIDs(t))
}

func TestNoteSync_Delete_UnknownLocallyGoesToServer(t *testing.T) {
	h := newSyncHarness(t)

	h.adapter.EXPECT().DeleteNote(gomock.Any(), "38").Return(nil)

	assert.NoError(t, h.notes.Delete(context.Background(), "38.0"))
}

// ── FetchAll ─────────────────────────────────────────────────────────────────

func TestNoteSync_FetchAll_PrunesNotesMissingOnServer(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t,
		models.Note{ClientSideID: "c-1", ID: "1", OwnerID: "u1", Title: "one"},
		models.Note{ClientSideID: "c-2", ID: "2", OwnerID: "u1", Title: "two"},
		models.Note{ClientSideID: "c-3", ID: "3", OwnerID: "u1", Title: "three"},
	)

	h.adapter.EXPECT().ListNotes(gomock.Any()).
		Return([]byte(`{"notes":[{"id":1,"title":"one"},{"id":"3.0","title":"three!"}]}`), nil)

	report, err := h.notes.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Synced)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, map[string]string{"c-1": "1", "c-3": "3"}, h.localNoteIDs(t))

	three, err := h.storages.NoteRepository.GetNote(ctx, "c-3")
	require.NoError(t, err)
	assert.Equal(t, "three!", three.Title)
	assert.Len(t, h.notes.Confirmed(), 2)
}

func TestNoteSync_FetchAll_AddsNewNotesAndKeepsUnsyncedOnes(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t, models.Note{ClientSideID: "c-draft", OwnerID: "u1", Title: "draft"})

	h.adapter.EXPECT().ListNotes(gomock.Any()).
		Return([]byte(`[{"id":"4","title":"new","categoryId":"3"}]`), nil)

	_, err := h.notes.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"c-draft": "", "n-1": "4"}, h.localNoteIDs(t))

	added, err := h.storages.NoteRepository.GetNote(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, "English", added.Subject)
}

func TestNoteSync_FetchAll_SkipsUnreadableElements(t *testing.T) {
	h := newSyncHarness(t)

	h.adapter.EXPECT().ListNotes(gomock.Any()).
		Return([]byte(`{"data":[{"id":"1","title":true},{"id":"2","title":"ok"},{"title":"no id"}]}`), nil)

	report, err := h.notes.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	assert.Equal(t, 2, report.Skipped)
}

func TestNoteSync_FetchAll_DoesNotResurrectPendingDelete(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t,
		models.Note{ClientSideID: "c-1", ID: "1", OwnerID: "u1"},
		models.Note{ClientSideID: "c-2", ID: "2", OwnerID: "u1"},
	)
	h.network.down.Store(true)
	require.NoError(t, h.notes.Delete(ctx, "c-2"))
	h.network.down.Store(false)

	h.adapter.EXPECT().ListNotes(gomock.Any()).Return([]byte(`[{"id":"1"},{"id":"2"}]`), nil)

	_, err := h.notes.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"c-1": "1"}, h.localNoteIDs(t))
	assert.Equal(t, 1, h.notes.PendingCount())
}

func TestNoteSync_FetchAll_KeepsQueuedLocalEdit(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seedNotes(t, models.Note{ClientSideID: "c-1", ID: "1", OwnerID: "u1", Title: "old"})
	h.network.down.Store(true)
	_, err := h.notes.Save(ctx, models.Note{ClientSideID: "c-1", ID: "1", Title: "mine"})
	require.NoError(t, err)
	h.network.down.Store(false)

	h.adapter.EXPECT().ListNotes(gomock.Any()).Return([]byte(`[{"id":"1","title":"theirs"}]`), nil)

	_, err = h.notes.FetchAll(ctx)
	require.NoError(t, err)

	local, err := h.storages.NoteRepository.GetNote(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "mine", local.Title)
}

func TestNoteSync_FetchAll_ServerErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unauthorized", adapter.NewStatusError(401, ""), ErrAuthRequired},
		{"network", errDial, ErrNetworkUnavailable},
		{"server", adapter.NewStatusError(500, ""), ErrServer},
		{"deadline", context.DeadlineExceeded, ErrTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSyncHarness(t)
			h.seedNotes(t, models.Note{ClientSideID: "c-1", ID: "1", OwnerID: "u1"})
			h.adapter.EXPECT().ListNotes(gomock.Any()).Return(nil, tt.err)

			_, err := h.notes.FetchAll(context.Background())
			assert.ErrorIs(t, err, tt.want)
			// при ошибке локальные данные не трогаем
			assert.Equal(t, map[string]string{"c-1": "1"}, h.localNoteIDs(t))
		})
	}
}

// ── SyncPending ──────────────────────────────────────────────────────────────

func TestNoteSync_SyncPending_AllSuccessEmptiesQueue(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.network.down.Store(true)
	for _, title := range []string{"a", "b", "c"} {
		_, err := h.notes.Save(ctx, models.Note{Title: title})
		require.NoError(t, err)
	}
	h.network.down.Store(false)

	next := 100
	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, p models.NotePayload) ([]byte, error) {
			next++
			return fmt.Appendf(nil, `{"id":%d,"title":%q}`, next, p.Title), nil
		})

	report, err := h.notes.SyncPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Synced)
	assert.Zero(t, h.notes.PendingCount())

	for csid, id := range h.localNoteIDs(t) {
		assert.NotEmpty(t, id, csid)
	}
}

func TestNoteSync_SyncPending_StopsAtNetworkFailure(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.network.down.Store(true)
	_, err := h.notes.Save(ctx, models.Note{Title: "a"})
	require.NoError(t, err)
	_, err = h.notes.Save(ctx, models.Note{Title: "b"})
	require.NoError(t, err)
	h.network.down.Store(false)

	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(nil, errDial).Times(1)

	report, err := h.notes.SyncPending(ctx)
	require.ErrorIs(t, err, ErrSyncIncomplete)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 2, h.notes.PendingCount())
}

func TestNoteSync_SyncPending_ContinuesAfterServerRejection(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.network.down.Store(true)
	_, err := h.notes.Save(ctx, models.Note{Title: "a"})
	require.NoError(t, err)
	_, err = h.notes.Save(ctx, models.Note{Title: "b"})
	require.NoError(t, err)
	h.network.down.Store(false)

	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.NotePayload) ([]byte, error) {
			if p.Title == "a" {
				return nil, adapter.NewStatusError(400, "bad")
			}
			return []byte(`{"id":"2"}`), nil
		}).Times(2)

	report, err := h.notes.SyncPending(ctx)
	require.ErrorIs(t, err, ErrSyncIncomplete)
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, 1, report.Synced)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, h.notes.PendingCount())
}

func TestNoteSync_SyncPending_OfflineSkipsEverything(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.network.down.Store(true)
	_, err := h.notes.Save(ctx, models.Note{Title: "a"})
	require.NoError(t, err)

	report, err := h.notes.SyncPending(ctx)
	require.ErrorIs(t, err, ErrNetworkUnavailable)
	assert.Equal(t, 1, report.Skipped)
}

func TestNoteSync_Restore_ReloadsQueueFromStore(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.network.down.Store(true)
	_, err := h.notes.Save(ctx, models.Note{Title: "a"})
	require.NoError(t, err)

	restarted := newNoteSyncService(h.storages.NoteRepository, h.storages.PendingOperationRepository,
		h.adapter, h.sessions, h.network, sequentialIDs("r"), logger.Nop())
	require.Zero(t, restarted.PendingCount())

	require.NoError(t, restarted.Restore(ctx))
	assert.Equal(t, 1, restarted.PendingCount())
}

func TestNoteSync_SupersededCreateCarriesIDIntoNewerSnapshot(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})
	h.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.NotePayload) ([]byte, error) {
			close(started)
			<-release
			return []byte(`{"id":"500","title":"v1"}`), nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := h.notes.Save(ctx, models.Note{ClientSideID: "c-1", Title: "v1"})
		done <- err
	}()
	<-started

	// вторая правка, пока первая ещё в полёте, остаётся в очереди
	saved, err := h.notes.Save(ctx, models.Note{ClientSideID: "c-1", Title: "v2"})
	require.NoError(t, err)
	assert.Empty(t, saved.ID)

	close(release)
	require.NoError(t, <-done)

	op, _, ok := h.notes.pending.Get("c-1")
	require.True(t, ok)
	var snapshot models.Note
	require.NoError(t, json.Unmarshal(op.Snapshot, &snapshot))
	assert.Equal(t, "v2", snapshot.Title)
	assert.Equal(t, "500", snapshot.ID)

	local, err := h.storages.NoteRepository.GetNote(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "500", local.ID)
	assert.Equal(t, "v2", local.Title)

	h.adapter.EXPECT().UpdateNote(gomock.Any(), "500", gomock.Any()).Return([]byte(`{"id":"500","title":"v2"}`), nil)
	_, err = h.notes.SyncPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, h.notes.PendingCount())
}

func TestNoteSync_List(t *testing.T) {
	h := newSyncHarness(t)
	h.seedNotes(t, models.Note{ClientSideID: "c-1", Title: "a"})

	notes, err := h.notes.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "a", notes[0].Title)
}
