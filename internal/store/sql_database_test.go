package store

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecWithRetry_RetriesBusy(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectExec("DELETE FROM notes").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec("DELETE FROM notes").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := storeDB.execWithRetry(context.Background(), "DELETE FROM notes")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecWithRetry_GivesUp(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectExec("DELETE FROM notes").WillReturnError(sqlite3.Error{Code: sqlite3.ErrLocked})
	}

	_, err := storeDB.execWithRetry(context.Background(), "DELETE FROM notes")
	var sqliteErr sqlite3.Error
	assert.True(t, errors.As(err, &sqliteErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecWithRetry_NoRetryForOtherErrors(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectExec("DELETE FROM notes").WillReturnError(errors.New("syntax error"))

	_, err := storeDB.execWithRetry(context.Background(), "DELETE FROM notes")
	assert.EqualError(t, err, "syntax error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecWithRetry_ContextCancelled(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	ctx, cancel := context.WithCancel(context.Background())
	mock.ExpectExec("DELETE FROM notes").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	cancel()

	_, err := storeDB.execWithRetry(ctx, "DELETE FROM notes")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "lumina.db?"+sqlitePragmas, sqliteDSN("lumina.db"))
	assert.Equal(t, "file:x.db?mode=rwc&"+sqlitePragmas, sqliteDSN("file:x.db?mode=rwc"))
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))
	assert.Equal(t, "a.db?_journal_mode=DELETE", sqliteDSN("a.db?_journal_mode=DELETE"))
}

func TestUpsertSuffix(t *testing.T) {
	got := upsertSuffix([]string{"kind", "client_side_id", "operation", "attempts"}, "kind", "client_side_id")
	assert.Equal(t, "ON CONFLICT(kind, client_side_id) DO UPDATE SET operation = excluded.operation, attempts = excluded.attempts", got)
}
