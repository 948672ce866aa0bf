// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a study note authored on the device and mirrored on the server.
//
// ClientSideID is the stable local key and never changes. ID is the
// server-assigned identifier; it stays empty until a create succeeds and is
// never reused afterwards.
type Note struct {
	ClientSideID string `json:"client_side_id"`
	ID           string `json:"id,omitempty"`
	OwnerID      string `json:"owner_id"`

	Title   string `json:"title"`
	Content string `json:"content"`
	// Subject is the display name of the note's category. The numeric code
	// the server expects is derived from it on every request.
	Subject     string   `json:"subject"`
	Tags        []string `json:"tags,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
	Shared      bool     `json:"shared"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCreated reports whether the note already exists on the server.
func (n Note) IsCreated() bool {
	return n.ID != ""
}

// NotePayload is the request body accepted by the notes endpoints.
type NotePayload struct {
	ID               string     `json:"id,omitempty"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	Subject          string     `json:"subject"`
	CategoryID       int        `json:"categoryId"`
	Tags             []string   `json:"tags"`
	UserID           string     `json:"userId"`
	CreatedDate      *time.Time `json:"createdDate,omitempty"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
	Shared           bool       `json:"shared"`
	AttachmentPaths  []string   `json:"attachmentPaths"`
}

// RemoteNote is a note as reported by the server. A nil field means the
// response did not carry it; identifiers are kept as the raw text the server
// sent and are normalized by the caller.
type RemoteNote struct {
	ID          *string    `json:"id,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Subject     *string    `json:"subject,omitempty"`
	CategoryID  *string    `json:"category_id,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	UserID      *string    `json:"user_id,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Shared      *bool      `json:"shared,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
}
