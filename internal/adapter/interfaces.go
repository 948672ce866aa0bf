// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the Lumina
// notes and community server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// services from HTTP. Entity endpoints return the raw response body; shape
// handling is left to package parser so the adapter never guesses at data.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] or [errors.As] with
// [*StatusError] instead of inspecting message text. Transport failures
// (no route, refused connection, DNS) wrap [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/lumina-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the remote API the sync services depend on.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every subsequent request.
	// An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently in use, or an empty string.
	Token() string

	// Ping reports whether the server is reachable. Any HTTP response counts
	// as reachable; only transport failures return an error.
	Ping(ctx context.Context) error

	// ListNotes fetches every note owned by the session user.
	// GET /api/notes
	ListNotes(ctx context.Context) ([]byte, error)

	// CreateNote creates a note and returns the response body carrying the
	// server-assigned id. POST /api/notes
	CreateNote(ctx context.Context, note models.NotePayload) ([]byte, error)

	// UpdateNote replaces the note identified by id. PUT /api/notes/{id}
	UpdateNote(ctx context.Context, id string, note models.NotePayload) ([]byte, error)

	// DeleteNote deletes the note identified by id. DELETE /api/notes/{id}
	DeleteNote(ctx context.Context, id string) error

	// ListPosts fetches the community feed. GET /api/posts
	ListPosts(ctx context.Context) ([]byte, error)

	// HotPosts fetches the server's ranking of popular posts.
	// GET /api/posts/hot?limit=N
	HotPosts(ctx context.Context, limit int) ([]byte, error)

	// CreatePost publishes a post. POST /api/posts
	CreatePost(ctx context.Context, post models.PostPayload) ([]byte, error)

	// UpdatePost replaces the post identified by id. POST /api/posts/{id}
	UpdatePost(ctx context.Context, id string, post models.PostPayload) ([]byte, error)

	// DeletePost deletes the post identified by id. DELETE /api/posts/{id}
	DeletePost(ctx context.Context, id string) error

	// LikePost and the other social calls POST to /api/posts/{id}/<action>
	// with the acting user id in the body.
	LikePost(ctx context.Context, id, userID string) error
	UnlikePost(ctx context.Context, id, userID string) error
	FavoritePost(ctx context.Context, id, userID string) error
	UnfavoritePost(ctx context.Context, id, userID string) error

	// UserFavorites lists posts favorited by userID. The server answers 403
	// unless userID is the session user. GET /api/users/{id}/favorites
	UserFavorites(ctx context.Context, userID string) ([]byte, error)
}
