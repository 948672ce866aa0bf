package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/models"
)

type localPostRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalPostRepository(db *DB, logger *logger.Logger) LocalPostRepository {
	return &localPostRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localPostRepository) GetPost(ctx context.Context, clientSideID string) (models.Post, error) {
	return r.getOne(ctx, "localPostRepository.GetPost", sq.Eq{"client_side_id": clientSideID})
}

func (r *localPostRepository) GetPostByServerID(ctx context.Context, id string) (models.Post, error) {
	if id == "" {
		return models.Post{}, ErrEntityNotFound
	}
	return r.getOne(ctx, "localPostRepository.GetPostByServerID", sq.Eq{"id": id})
}

func (r *localPostRepository) getOne(ctx context.Context, fn string, where sq.Eq) (models.Post, error) {
	query, args, err := psql.Select(postColumns...).From(postsTable).Where(where).Limit(1).ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrEntityNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to scan post row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

func (r *localPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(postColumns...).From(postsTable).OrderBy("created_at DESC", "client_side_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localPostRepository.GetAllPosts").Msg("failed to execute query for getting all posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localPostRepository.GetAllPosts").Msg("failed to scan post rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func (r *localPostRepository) SavePost(ctx context.Context, post models.Post) error {
	query, args, err := psql.Insert(postsTable).
		Columns(postColumns...).
		Values(
			post.ClientSideID,
			post.ID,
			post.OwnerID,
			post.Username,
			post.Title,
			post.Content,
			post.Subject,
			stringList(post.Attachments),
			stringList(post.LikedBy),
			stringList(post.FavoritedBy),
			post.CommentCount,
			post.ViewCount,
			nullTime(post.CreatedAt),
			nullTime(post.UpdatedAt),
		).
		Suffix(upsertSuffix(postColumns, "client_side_id")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPostRepository.SavePost").
			Str("client_side_id", post.ClientSideID).
			Str("id", post.ID).
			Msg("failed to execute upsert for post")
		return fmt.Errorf("%w: failed to save post (client_side_id=%s): %w", ErrExecutingStatement, post.ClientSideID, err)
	}

	return nil
}

func (r *localPostRepository) DeletePost(ctx context.Context, clientSideID string) error {
	query, args, err := psql.Delete(postsTable).Where(sq.Eq{"client_side_id": clientSideID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPostRepository.DeletePost").
			Str("client_side_id", clientSideID).
			Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localPostRepository) ClearPosts(ctx context.Context) error {
	query, args, err := psql.Delete(postsTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		post                          models.Post
		attachments, liked, favorited stringList
		createdAt, updatedAt          sql.NullTime
	)

	err := row.Scan(
		&post.ClientSideID,
		&post.ID,
		&post.OwnerID,
		&post.Username,
		&post.Title,
		&post.Content,
		&post.Subject,
		&attachments,
		&liked,
		&favorited,
		&post.CommentCount,
		&post.ViewCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Post{}, err
	}

	post.Attachments = attachments
	post.LikedBy = liked
	post.FavoritedBy = favorited
	post.CreatedAt = createdAt.Time
	post.UpdatedAt = updatedAt.Time

	return post, nil
}
