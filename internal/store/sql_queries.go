// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql is the statement builder for SQLite: "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	notesTable   = "notes"
	postsTable   = "posts"
	pendingTable = "pending_operations"
)

var noteColumns = []string{
	"client_side_id", "id", "owner_id", "title", "content", "subject",
	"tags", "attachments", "shared", "created_at", "updated_at",
}

var postColumns = []string{
	"client_side_id", "id", "owner_id", "username", "title", "content", "subject",
	"attachments", "liked_by", "favorited_by", "comment_count", "view_count",
	"created_at", "updated_at",
}

var pendingColumns = []string{
	"kind", "client_side_id", "operation", "snapshot", "enqueued_at", "attempts", "last_error",
	"paused",
}

// upsertSuffix builds "ON CONFLICT(key...) DO UPDATE SET c = excluded.c, ..."
// for every column that is not part of the conflict key.
func upsertSuffix(columns []string, key ...string) string {
	isKey := make(map[string]bool, len(key))
	for _, k := range key {
		isKey[k] = true
	}

	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		if isKey[c] {
			continue
		}
		sets = append(sets, c+" = excluded."+c)
	}

	return "ON CONFLICT(" + strings.Join(key, ", ") + ") DO UPDATE SET " + strings.Join(sets, ", ")
}
