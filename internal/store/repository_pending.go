package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/models"
)

type pendingOperationRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingOperationRepository(db *DB, logger *logger.Logger) PendingOperationRepository {
	return &pendingOperationRepository{
		DB:     db,
		logger: logger,
	}
}

// SavePendingOperation writes op, replacing any queued operation for the
// same entity.
func (r *pendingOperationRepository) SavePendingOperation(ctx context.Context, op models.PendingOperation) error {
	snapshot := string(op.Snapshot)
	if snapshot == "" {
		snapshot = "{}"
	}

	query, args, err := psql.Insert(pendingTable).
		Columns(pendingColumns...).
		Values(
			string(op.Kind),
			op.ClientSideID,
			string(op.Operation),
			snapshot,
			op.EnqueuedAt.UTC(),
			op.Attempts,
			op.LastError,
			op.Paused,
		).
		Suffix(upsertSuffix(pendingColumns, "kind", "client_side_id")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingOperationRepository.SavePendingOperation").
			Str("kind", string(op.Kind)).
			Str("client_side_id", op.ClientSideID).
			Msg("failed to persist pending operation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *pendingOperationRepository) DeletePendingOperation(ctx context.Context, kind models.EntityKind, clientSideID string) error {
	query, args, err := psql.Delete(pendingTable).
		Where(sq.Eq{"kind": string(kind), "client_side_id": clientSideID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// GetPendingOperations returns the queued operations of kind, oldest first.
func (r *pendingOperationRepository) GetPendingOperations(ctx context.Context, kind models.EntityKind) ([]models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(pendingColumns...).
		From(pendingTable).
		Where(sq.Eq{"kind": string(kind)}).
		OrderBy("enqueued_at", "client_side_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "pendingOperationRepository.GetPendingOperations").Msg("failed to query pending operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ops := make([]models.PendingOperation, 0)
	for rows.Next() {
		var (
			op                  models.PendingOperation
			kindText, operation string
			snapshot            string
			enqueuedAt          sql.NullTime
		)
		if err = rows.Scan(&kindText, &op.ClientSideID, &operation, &snapshot, &enqueuedAt, &op.Attempts, &op.LastError, &op.Paused); err != nil {
			log.Err(err).Str("func", "pendingOperationRepository.GetPendingOperations").Msg("failed to scan pending operation rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		op.Kind = models.EntityKind(kindText)
		op.Operation = models.OperationType(operation)
		op.Snapshot = []byte(snapshot)
		op.EnqueuedAt = enqueuedAt.Time
		ops = append(ops, op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ops, nil
}

func (r *pendingOperationRepository) CountPendingOperations(ctx context.Context) (map[models.EntityKind]int, error) {
	query, args, err := psql.Select("kind", "COUNT(*)").From(pendingTable).GroupBy("kind").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.EntityKind]int)
	for rows.Next() {
		var (
			kind  string
			count int
		)
		if err = rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts[models.EntityKind(kind)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}
