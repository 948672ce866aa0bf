// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Post is a community post. LikedBy and FavoritedBy hold user ids; each id
// appears at most once and the set sizes are the displayed counters.
type Post struct {
	ClientSideID string `json:"client_side_id"`
	ID           string `json:"id,omitempty"`
	OwnerID      string `json:"owner_id"`
	Username     string `json:"username,omitempty"`

	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Subject     string   `json:"subject"`
	Attachments []string `json:"attachments,omitempty"`

	LikedBy      []string `json:"liked_by,omitempty"`
	FavoritedBy  []string `json:"favorited_by,omitempty"`
	CommentCount int      `json:"comment_count"`
	ViewCount    int      `json:"view_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCreated reports whether the post already exists on the server.
func (p Post) IsCreated() bool {
	return p.ID != ""
}

// LikeCount returns the number of distinct users who liked the post.
func (p Post) LikeCount() int {
	return len(p.LikedBy)
}

// FavoriteCount returns the number of distinct users who favorited the post.
func (p Post) FavoriteCount() int {
	return len(p.FavoritedBy)
}

// IsLikedBy reports whether userID is in the like set.
func (p Post) IsLikedBy(userID string) bool {
	return slices.Contains(p.LikedBy, userID)
}

// IsFavoritedBy reports whether userID is in the favorites set.
func (p Post) IsFavoritedBy(userID string) bool {
	return slices.Contains(p.FavoritedBy, userID)
}

// PostPayload is the request body accepted by the posts endpoints.
type PostPayload struct {
	ID              string     `json:"id,omitempty"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Subject         string     `json:"subject"`
	CategoryID      int        `json:"categoryId"`
	UserID          string     `json:"userId"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	AttachmentPaths []string   `json:"attachmentPaths"`
}

// RemotePost is a post as reported by the server. A nil pointer or nil slice
// means the response did not carry the field.
type RemotePost struct {
	ID            *string    `json:"id,omitempty"`
	UserID        *string    `json:"user_id,omitempty"`
	Username      *string    `json:"username,omitempty"`
	Title         *string    `json:"title,omitempty"`
	Content       *string    `json:"content,omitempty"`
	Subject       *string    `json:"subject,omitempty"`
	CategoryID    *string    `json:"category_id,omitempty"`
	Attachments   []string   `json:"attachments,omitempty"`
	Likes         []string   `json:"likes,omitempty"`
	Favorites     []string   `json:"favorites,omitempty"`
	LikeCount     *int       `json:"like_count,omitempty"`
	FavoriteCount *int       `json:"favorite_count,omitempty"`
	CommentCount  *int       `json:"comment_count,omitempty"`
	ViewCount     *int       `json:"view_count,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ToggleOutcome describes what a like or favorite toggle did.
type ToggleOutcome int

const (
	// ToggleApplied means the state changed locally and on the server.
	ToggleApplied ToggleOutcome = iota
	// ToggleNoChange means the post was already in the requested state and
	// the request was an un-like or un-favorite.
	ToggleNoChange
	// ToggleAlreadyDone means the post was already liked or favorited.
	ToggleAlreadyDone
)

func (o ToggleOutcome) String() string {
	switch o {
	case ToggleApplied:
		return "applied"
	case ToggleNoChange:
		return "no change"
	case ToggleAlreadyDone:
		return "already done"
	default:
		return "unknown"
	}
}
