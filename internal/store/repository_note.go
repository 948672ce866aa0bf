package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/models"
)

type localNoteRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalNoteRepository(db *DB, logger *logger.Logger) LocalNoteRepository {
	return &localNoteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localNoteRepository) GetNote(ctx context.Context, clientSideID string) (models.Note, error) {
	return r.getOne(ctx, "localNoteRepository.GetNote", sq.Eq{"client_side_id": clientSideID})
}

func (r *localNoteRepository) GetNoteByServerID(ctx context.Context, id string) (models.Note, error) {
	if id == "" {
		return models.Note{}, ErrEntityNotFound
	}
	return r.getOne(ctx, "localNoteRepository.GetNoteByServerID", sq.Eq{"id": id})
}

func (r *localNoteRepository) getOne(ctx context.Context, fn string, where sq.Eq) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(noteColumns...).From(notesTable).Where(where).Limit(1).ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrEntityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (r *localNoteRepository) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(noteColumns...).From(notesTable).OrderBy("created_at DESC", "client_side_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localNoteRepository.GetAllNotes").Msg("failed to execute query for getting all notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localNoteRepository.GetAllNotes").Msg("failed to scan note rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// SaveNote inserts the note or replaces the row with the same client side id.
func (r *localNoteRepository) SaveNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.ClientSideID,
			note.ID,
			note.OwnerID,
			note.Title,
			note.Content,
			note.Subject,
			stringList(note.Tags),
			stringList(note.Attachments),
			note.Shared,
			nullTime(note.CreatedAt),
			nullTime(note.UpdatedAt),
		).
		Suffix(upsertSuffix(noteColumns, "client_side_id")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localNoteRepository.SaveNote").
			Str("client_side_id", note.ClientSideID).
			Str("id", note.ID).
			Msg("failed to execute upsert for note")
		return fmt.Errorf("%w: failed to save note (client_side_id=%s): %w", ErrExecutingStatement, note.ClientSideID, err)
	}

	return nil
}

func (r *localNoteRepository) DeleteNote(ctx context.Context, clientSideID string) error {
	query, args, err := psql.Delete(notesTable).Where(sq.Eq{"client_side_id": clientSideID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localNoteRepository.DeleteNote").
			Str("client_side_id", clientSideID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localNoteRepository) ClearNotes(ctx context.Context) error {
	query, args, err := psql.Delete(notesTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note                 models.Note
		tags, attachments    stringList
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&note.ClientSideID,
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.Subject,
		&tags,
		&attachments,
		&note.Shared,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.Tags = tags
	note.Attachments = attachments
	note.CreatedAt = createdAt.Time
	note.UpdatedAt = updatedAt.Time

	return note, nil
}

// nullTime stores the zero time as NULL.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
