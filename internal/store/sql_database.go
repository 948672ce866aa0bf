package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/migrations"
)

const (
	maxRetries = 3
	retryDelay = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execWithRetry runs a write statement, retrying while the database reports
// a transient lock.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res sql.Result
		err error
	)

	for attempt := 0; attempt < maxRetries; attempt++ {
		res, err = db.ExecContext(ctx, query, args...)
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return res, err
		}

		db.logger.Debug().
			Str("func", "DB.execWithRetry").
			Int("attempt", attempt+1).
			Err(err).
			Msg("database is busy, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay * time.Duration(attempt+1)):
		}
	}

	return res, err
}
