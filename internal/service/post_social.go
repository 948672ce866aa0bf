package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/lumina-sync/internal/adapter"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/parser"
	"github.com/MKhiriev/lumina-sync/internal/reconcile"
	"github.com/MKhiriev/lumina-sync/internal/store"
	"github.com/MKhiriev/lumina-sync/models"
)

// socialSet describes one per-user set on a post (likes or favorites) and
// the server calls that add to or remove from it.
type socialSet struct {
	name   string
	ids    func(p models.Post) []string
	with   func(p models.Post, ids []string) models.Post
	add    func(ctx context.Context, id, userID string) error
	remove func(ctx context.Context, id, userID string) error
}

func (s *postSyncService) likes() socialSet {
	return socialSet{
		name: "like",
		ids:  func(p models.Post) []string { return p.LikedBy },
		with: func(p models.Post, ids []string) models.Post {
			p.LikedBy = ids
			return p
		},
		add:    s.adapter.LikePost,
		remove: s.adapter.UnlikePost,
	}
}

func (s *postSyncService) favorites() socialSet {
	return socialSet{
		name: "favorite",
		ids:  func(p models.Post) []string { return p.FavoritedBy },
		with: func(p models.Post, ids []string) models.Post {
			p.FavoritedBy = ids
			return p
		},
		add:    s.adapter.FavoritePost,
		remove: s.adapter.UnfavoritePost,
	}
}

func (s *postSyncService) SetLiked(ctx context.Context, key string, liked bool) (models.ToggleOutcome, error) {
	return s.toggle(ctx, key, liked, s.likes())
}

func (s *postSyncService) SetFavorited(ctx context.Context, key string, favorited bool) (models.ToggleOutcome, error) {
	return s.toggle(ctx, key, favorited, s.favorites())
}

// toggle moves the session user into or out of set. The local change is
// applied before the server call and reverted to the exact prior set when
// the call fails.
func (s *postSyncService) toggle(ctx context.Context, key string, target bool, set socialSet) (models.ToggleOutcome, error) {
	log := logger.FromContextOr(ctx, s.logger)

	sess, err := s.session()
	if err != nil {
		return models.ToggleNoChange, err
	}

	post, found, err := s.resolve(ctx, key)
	if err != nil {
		return models.ToggleNoChange, err
	}
	if !found {
		return models.ToggleNoChange, fmt.Errorf("%w: post %s", ErrNotFound, key)
	}
	if post.ID == "" {
		return models.ToggleNoChange, fmt.Errorf("%w: post %s is not published yet", ErrNotFound, post.ClientSideID)
	}

	user := reconcile.NormalizeID(sess.UserID)
	if slices.Contains(set.ids(post), user) == target {
		if target {
			return models.ToggleAlreadyDone, nil
		}
		return models.ToggleNoChange, nil
	}

	if !s.online() {
		return models.ToggleNoChange, fmt.Errorf("%w: cannot %s offline", ErrNetworkUnavailable, set.name)
	}

	lock := set.name + ":" + post.ClientSideID
	if !s.claim(lock) {
		return models.ToggleNoChange, ErrOperationInProgress
	}
	defer s.release(lock)

	// the row is read again here: a toggle of the other set may have
	// written it since resolve
	var prior []string
	changed, err := s.editSocial(ctx, post, set, func(ids []string) ([]string, bool) {
		prior = slices.Clone(ids)
		if slices.Contains(ids, user) == target {
			return nil, false
		}
		if target {
			return append(slices.Clone(ids), user), true
		}
		return slices.DeleteFunc(slices.Clone(ids), func(id string) bool { return id == user }), true
	})
	if err != nil {
		return models.ToggleNoChange, err
	}
	if !changed {
		if target {
			return models.ToggleAlreadyDone, nil
		}
		return models.ToggleNoChange, nil
	}

	call := set.remove
	if target {
		call = set.add
	}
	err = call(ctx, post.ID, user)
	switch {
	case err == nil:
		return models.ToggleApplied, nil
	case target && errors.Is(err, adapter.ErrConflict):
		return models.ToggleAlreadyDone, nil
	case !target && errors.Is(err, adapter.ErrNotFound):
		return models.ToggleNoChange, nil
	}

	mapped := mapAdapterError(err)
	log.Warn().Err(mapped).
		Str("func", "postSyncService.toggle").
		Str("action", set.name).
		Str("id", post.ID).
		Bool("target", target).
		Msg("toggle failed, reverting")

	_, revertErr := s.editSocial(context.WithoutCancel(ctx), post, set, func([]string) ([]string, bool) {
		return prior, true
	})
	if revertErr != nil {
		log.Err(revertErr).
			Str("func", "postSyncService.toggle").
			Str("id", post.ID).
			Msg("failed to revert toggle")
	}

	return models.ToggleNoChange, mapped
}

// editSocial re-reads the post and rewrites only set, leaving the other
// social set as currently stored. edit reports false to leave the row alone.
func (s *postSyncService) editSocial(ctx context.Context, post models.Post, set socialSet, edit func(ids []string) ([]string, bool)) (bool, error) {
	s.socialMu.Lock()
	defer s.socialMu.Unlock()

	current, err := s.b.getLocal(ctx, post.ClientSideID)
	if errors.Is(err, store.ErrEntityNotFound) {
		return false, fmt.Errorf("%w: post %s", ErrNotFound, post.ClientSideID)
	}
	if err != nil {
		return false, fmt.Errorf("get local post: %w", err)
	}

	next, changed := edit(set.ids(current))
	if !changed {
		return false, nil
	}
	return true, s.storeSocial(ctx, set.with(current, next))
}

// storeSocial writes p locally and refreshes the confirmed copy if the
// post is cached.
func (s *postSyncService) storeSocial(ctx context.Context, p models.Post) error {
	if err := s.b.saveLocal(ctx, p); err != nil {
		return fmt.Errorf("save post locally: %w", err)
	}
	if _, cached := s.cache.Get(p.ClientSideID); cached {
		s.cache.Upsert(p)
	}
	return nil
}

// HotPosts asks the server for its ranking and falls back to sorting the
// known posts locally when that fails.
func (s *postSyncService) HotPosts(ctx context.Context, limit int) ([]models.Post, error) {
	if _, err := s.session(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.hotLimit
	}

	if s.online() {
		body, err := s.adapter.HotPosts(ctx, limit)
		if err == nil {
			var list parser.List[models.RemotePost]
			if list, err = parser.ParsePostList(body); err == nil {
				return truncate(s.absorb(ctx, list.Items), limit), nil
			}
		}
		logger.FromContextOr(ctx, s.logger).Warn().Err(err).
			Str("func", "postSyncService.HotPosts").
			Msg("hot ranking unavailable, sorting locally")
	}

	posts := s.cache.List()
	if len(posts) == 0 {
		var err error
		if posts, err = s.b.listLocal(ctx); err != nil {
			return nil, fmt.Errorf("list local posts: %w", err)
		}
	}
	sortHot(posts)
	return truncate(posts, limit), nil
}

// MyFavorites lists the session user's favorites. The server only answers
// for the caller's own id; on 403 or without network the favorites are
// taken from the known posts instead.
func (s *postSyncService) MyFavorites(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContextOr(ctx, s.logger)

	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	user := reconcile.NormalizeID(sess.UserID)

	if !s.online() {
		return s.knownFavorites(ctx, user)
	}

	body, err := s.adapter.UserFavorites(ctx, user)
	if err == nil {
		var list parser.List[models.RemotePost]
		if list, err = parser.ParsePostList(body); err == nil {
			return s.absorb(ctx, list.Items), nil
		}
	}

	mapped := mapAdapterError(err)
	switch {
	case errors.Is(mapped, ErrForbidden):
		log.Warn().Err(mapped).
			Str("func", "postSyncService.MyFavorites").
			Msg("favorites endpoint refused, filtering the full post list")
		if _, fetchErr := s.FetchAll(ctx); fetchErr != nil {
			log.Warn().Err(fetchErr).Str("func", "postSyncService.MyFavorites").Msg("post refresh failed")
		}
		return s.knownFavorites(ctx, user)
	case errors.Is(mapped, ErrNetworkUnavailable):
		return s.knownFavorites(ctx, user)
	}

	return nil, mapped
}

func (s *postSyncService) knownFavorites(ctx context.Context, userID string) ([]models.Post, error) {
	posts, err := s.b.listLocal(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local posts: %w", err)
	}
	return slices.DeleteFunc(posts, func(p models.Post) bool { return !p.IsFavoritedBy(userID) }), nil
}

// absorb merges server posts into the local store and the confirmed cache
// without pruning anything, and returns them in server order.
func (s *postSyncService) absorb(ctx context.Context, remotes []models.RemotePost) []models.Post {
	log := logger.FromContextOr(ctx, s.logger)

	out := make([]models.Post, 0, len(remotes))
	for _, r := range remotes {
		id := remoteID(r.ID)
		if id == "" {
			continue
		}

		local, err := s.b.getLocalByServerID(ctx, id)
		var post models.Post
		if err == nil {
			post = mergePost(local, r)
		} else {
			post = postFromRemote(s.newID(), r)
		}

		s.cache.Upsert(post)
		if _, _, queued := s.pending.Get(post.ClientSideID); queued {
			// the queued edit is what the user sees until it is pushed
			out = append(out, local)
			continue
		}
		if err = s.b.saveLocal(ctx, post); err != nil {
			log.Err(err).Str("func", "postSyncService.absorb").Str("id", id).Msg("failed to store post")
		}
		out = append(out, post)
	}
	return out
}

// sortHot orders posts by like count, then newest first.
func sortHot(posts []models.Post) {
	slices.SortStableFunc(posts, func(a, b models.Post) int {
		if c := cmp.Compare(b.LikeCount(), a.LikeCount()); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
