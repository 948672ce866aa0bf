package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/mock"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestQueue(t *testing.T) (*pendingQueue, *mock.MockPendingOperationRepository) {
	t.Helper()
	repo := mock.NewMockPendingOperationRepository(gomock.NewController(t))
	q := newPendingQueue(models.KindNote, repo, logger.Nop())

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int
	q.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return q, repo
}

func TestPendingQueue_PutReplacesOlderSnapshot(t *testing.T) {
	q, repo := newTestQueue(t)
	ctx := context.Background()

	repo.EXPECT().SavePendingOperation(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := q.Put(ctx, "c-1", models.OperationSave, models.Note{Title: "v1"})
	require.NoError(t, err)
	second, err := q.Put(ctx, "c-1", models.OperationSave, models.Note{Title: "v2"})
	require.NoError(t, err)
	assert.Greater(t, second, first)

	op, gen, ok := q.Get("c-1")
	require.True(t, ok)
	assert.Equal(t, second, gen)

	var n models.Note
	require.NoError(t, json.Unmarshal(op.Snapshot, &n))
	assert.Equal(t, "v2", n.Title)
	assert.Equal(t, 1, q.Len())
}

func TestPendingQueue_CompleteOnlyMatchingGeneration(t *testing.T) {
	q, repo := newTestQueue(t)
	ctx := context.Background()

	repo.EXPECT().SavePendingOperation(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	repo.EXPECT().DeletePendingOperation(gomock.Any(), models.KindNote, "c-1").Return(nil).Times(1)

	stale, _ := q.Put(ctx, "c-1", models.OperationSave, models.Note{})
	current, _ := q.Put(ctx, "c-1", models.OperationDelete, models.Note{})

	assert.False(t, q.Complete(ctx, "c-1", stale))
	assert.Equal(t, 1, q.Len())

	assert.True(t, q.Complete(ctx, "c-1", current))
	assert.Zero(t, q.Len())
	assert.False(t, q.Complete(ctx, "c-1", current))
}

func TestPendingQueue_CompleteSurvivesCancelledContext(t *testing.T) {
	q, repo := newTestQueue(t)

	repo.EXPECT().SavePendingOperation(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeletePendingOperation(gomock.Any(), models.KindNote, "c-1").
		DoAndReturn(func(ctx context.Context, _ models.EntityKind, _ string) error {
			assert.NoError(t, ctx.Err())
			return nil
		})

	gen, _ := q.Put(context.Background(), "c-1", models.OperationSave, models.Note{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.True(t, q.Complete(ctx, "c-1", gen))
}

func TestPendingQueue_MarkFailed(t *testing.T) {
	q, repo := newTestQueue(t)
	ctx := context.Background()

	var persisted models.PendingOperation
	repo.EXPECT().SavePendingOperation(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().SavePendingOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op models.PendingOperation) error {
			persisted = op
			return nil
		})

	gen, _ := q.Put(ctx, "c-1", models.OperationSave, models.Note{})
	q.MarkFailed(ctx, "c-1", gen, errors.New("502 bad gateway"))
	// устаревшее поколение игнорируется, повторного сохранения нет
	q.MarkFailed(ctx, "c-1", gen+10, errors.New("ignored"))

	op, _, _ := q.Get("c-1")
	assert.Equal(t, 1, op.Attempts)
	assert.Equal(t, "502 bad gateway", op.LastError)
	assert.Equal(t, op, persisted)
}

func TestPendingQueue_PutKeepsEntryWhenPersistFails(t *testing.T) {
	q, repo := newTestQueue(t)

	repo.EXPECT().SavePendingOperation(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	gen, err := q.Put(context.Background(), "c-1", models.OperationSave, models.Note{Title: "T"})
	// операция остаётся в памяти и уйдёт на сервер, поэтому Put не сообщает об ошибке
	require.NoError(t, err)

	op, got, ok := q.Get("c-1")
	require.True(t, ok)
	assert.Equal(t, gen, got)
	var n models.Note
	require.NoError(t, json.Unmarshal(op.Snapshot, &n))
	assert.Equal(t, "T", n.Title)
	assert.Equal(t, 1, q.Len())
}

func TestPendingQueue_Pause(t *testing.T) {
	q, repo := newTestQueue(t)
	ctx := context.Background()

	var stored []models.PendingOperation
	repo.EXPECT().SavePendingOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op models.PendingOperation) error {
			stored = append(stored, op)
			return nil
		}).Times(3)

	gen, err := q.Put(ctx, "c-1", models.OperationSave, models.Note{})
	require.NoError(t, err)

	q.Pause(ctx, "c-1", gen+1) // чужое поколение не трогаем
	q.Pause(ctx, "c-1", gen)
	q.Pause(ctx, "c-1", gen) // повторная пауза ничего не пишет

	op, _, ok := q.Get("c-1")
	require.True(t, ok)
	assert.True(t, op.Paused)
	require.Len(t, stored, 2)
	assert.True(t, stored[1].Paused)

	// новая правка снимает паузу
	_, err = q.Put(ctx, "c-1", models.OperationSave, models.Note{Title: "v2"})
	require.NoError(t, err)
	op, _, _ = q.Get("c-1")
	assert.False(t, op.Paused)
}

func TestPendingQueue_RestoreKeepsInMemoryEntries(t *testing.T) {
	q, repo := newTestQueue(t)
	ctx := context.Background()

	repo.EXPECT().SavePendingOperation(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().GetPendingOperations(gomock.Any(), models.KindNote).Return([]models.PendingOperation{
		{Kind: models.KindNote, ClientSideID: "c-1", Operation: models.OperationDelete},
		{Kind: models.KindNote, ClientSideID: "c-2", Operation: models.OperationSave},
	}, nil)

	_, err := q.Put(ctx, "c-1", models.OperationSave, models.Note{})
	require.NoError(t, err)
	require.NoError(t, q.Restore(ctx))

	op, _, ok := q.Get("c-1")
	require.True(t, ok)
	assert.Equal(t, models.OperationSave, op.Operation)
	_, _, ok = q.Get("c-2")
	assert.True(t, ok)
	assert.Equal(t, 2, q.Len())
}

func TestPendingQueue_ListOldestFirst(t *testing.T) {
	q, repo := newTestQueue(t)
	ctx := context.Background()

	repo.EXPECT().SavePendingOperation(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	for _, csid := range []string{"c-3", "c-1", "c-2"} {
		_, err := q.Put(ctx, csid, models.OperationSave, models.Note{})
		require.NoError(t, err)
	}

	var order []string
	for _, it := range q.List() {
		order = append(order, it.op.ClientSideID)
	}
	assert.Equal(t, []string{"c-3", "c-1", "c-2"}, order)
}
