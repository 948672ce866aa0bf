package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/lumina-sync/models"
)

type socialRequest struct {
	UserID string `json:"userId"`
}

// ListPosts implements [ServerAdapter].
func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]byte, error) {
	return h.getJSON(ctx, "/api/posts", nil)
}

// HotPosts implements [ServerAdapter].
func (h *httpServerAdapter) HotPosts(ctx context.Context, limit int) ([]byte, error) {
	req := h.authedRequest(ctx).SetQueryParam("limit", limitParam(limit))
	return h.execute(req, http.MethodGet, "/api/posts/hot")
}

// CreatePost implements [ServerAdapter].
func (h *httpServerAdapter) CreatePost(ctx context.Context, post models.PostPayload) ([]byte, error) {
	return h.sendJSON(ctx, http.MethodPost, "/api/posts", nil, post)
}

// UpdatePost implements [ServerAdapter].
func (h *httpServerAdapter) UpdatePost(ctx context.Context, id string, post models.PostPayload) ([]byte, error) {
	return h.sendJSON(ctx, http.MethodPost, "/api/posts/{id}", map[string]string{"id": id}, post)
}

// DeletePost implements [ServerAdapter].
func (h *httpServerAdapter) DeletePost(ctx context.Context, id string) error {
	req := h.authedRequest(ctx).SetPathParam("id", id)
	_, err := h.execute(req, http.MethodDelete, "/api/posts/{id}")
	return err
}

// LikePost implements [ServerAdapter].
func (h *httpServerAdapter) LikePost(ctx context.Context, id, userID string) error {
	return h.social(ctx, id, "like", userID)
}

// UnlikePost implements [ServerAdapter].
func (h *httpServerAdapter) UnlikePost(ctx context.Context, id, userID string) error {
	return h.social(ctx, id, "unlike", userID)
}

// FavoritePost implements [ServerAdapter].
func (h *httpServerAdapter) FavoritePost(ctx context.Context, id, userID string) error {
	return h.social(ctx, id, "favorite", userID)
}

// UnfavoritePost implements [ServerAdapter].
func (h *httpServerAdapter) UnfavoritePost(ctx context.Context, id, userID string) error {
	return h.social(ctx, id, "unfavorite", userID)
}

func (h *httpServerAdapter) social(ctx context.Context, id, action, userID string) error {
	_, err := h.sendJSON(ctx, http.MethodPost, "/api/posts/{id}/"+action,
		map[string]string{"id": id}, socialRequest{UserID: userID})
	return err
}

// UserFavorites implements [ServerAdapter].
func (h *httpServerAdapter) UserFavorites(ctx context.Context, userID string) ([]byte, error) {
	return h.getJSON(ctx, "/api/users/{id}/favorites", map[string]string{"id": userID})
}
