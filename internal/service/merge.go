package service

import (
	"slices"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/reconcile"
	"github.com/MKhiriev/lumina-sync/models"
)

// mergeNote combines a server response with the local note it answers.
// Fields the response carries win; absent fields keep the local value.
func mergeNote(local models.Note, remote models.RemoteNote) models.Note {
	merged := local

	if id := remoteID(remote.ID); id != "" {
		merged.ID = id
	}
	if owner := remoteID(remote.UserID); owner != "" {
		merged.OwnerID = owner
	}
	merged.Title = pick(remote.Title, local.Title)
	merged.Content = pick(remote.Content, local.Content)
	merged.Subject = mergeSubject(local.Subject, remote.Subject, remote.CategoryID)
	merged.Shared = pick(remote.Shared, local.Shared)
	merged.CreatedAt = pickTime(remote.CreatedAt, local.CreatedAt)
	merged.UpdatedAt = pickTime(remote.UpdatedAt, local.UpdatedAt)
	if remote.Tags != nil {
		merged.Tags = slices.Clone(remote.Tags)
	}
	if remote.Attachments != nil {
		merged.Attachments = slices.Clone(remote.Attachments)
	}

	return merged
}

// noteFromRemote builds a local note for a server note that matches no
// local row.
func noteFromRemote(clientSideID string, remote models.RemoteNote) models.Note {
	return mergeNote(models.Note{ClientSideID: clientSideID, Subject: reconcile.OtherCategory}, remote)
}

// mergePost is the post counterpart of mergeNote. Like and favorite sets
// are taken from the response only when it lists them; a bare counter
// cannot be turned back into user ids.
func mergePost(local models.Post, remote models.RemotePost) models.Post {
	merged := local

	if id := remoteID(remote.ID); id != "" {
		merged.ID = id
	}
	if owner := remoteID(remote.UserID); owner != "" {
		merged.OwnerID = owner
	}
	merged.Username = pick(remote.Username, local.Username)
	merged.Title = pick(remote.Title, local.Title)
	merged.Content = pick(remote.Content, local.Content)
	merged.Subject = mergeSubject(local.Subject, remote.Subject, remote.CategoryID)
	merged.CommentCount = pick(remote.CommentCount, local.CommentCount)
	merged.ViewCount = pick(remote.ViewCount, local.ViewCount)
	merged.CreatedAt = pickTime(remote.CreatedAt, local.CreatedAt)
	merged.UpdatedAt = pickTime(remote.UpdatedAt, local.UpdatedAt)
	if remote.Attachments != nil {
		merged.Attachments = slices.Clone(remote.Attachments)
	}
	if remote.Likes != nil {
		merged.LikedBy = normalizeIDs(remote.Likes)
	}
	if remote.Favorites != nil {
		merged.FavoritedBy = normalizeIDs(remote.Favorites)
	}

	return merged
}

func postFromRemote(clientSideID string, remote models.RemotePost) models.Post {
	return mergePost(models.Post{ClientSideID: clientSideID, Subject: reconcile.OtherCategory}, remote)
}

// mergeSubject resolves the category of a response. A subject name that
// maps to a real category wins, then the numeric code. A result of "Other"
// never replaces a known local category.
func mergeSubject(local string, subject, categoryID *string) string {
	resolved := ""
	switch {
	case subject != nil && !reconcile.IsOther(*subject):
		resolved = reconcile.CanonicalCategory(*subject)
	case categoryID != nil:
		resolved = reconcile.CategoryName(reconcile.NormalizeCategoryCode(*categoryID))
	case subject != nil:
		resolved = reconcile.OtherCategory
	}

	if resolved == "" || (resolved == reconcile.OtherCategory && local != "" && !reconcile.IsOther(local)) {
		return reconcile.CanonicalCategory(local)
	}
	return resolved
}

// normalizeIDs normalizes every id and drops empties and duplicates,
// keeping the first occurrence.
func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		id := reconcile.NormalizeID(raw)
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

func remoteID(raw *string) string {
	if raw == nil {
		return ""
	}
	return reconcile.NormalizeID(*raw)
}

func pick[T any](remote *T, local T) T {
	if remote == nil {
		return local
	}
	return *remote
}

func pickTime(remote *time.Time, local time.Time) time.Time {
	if remote == nil || remote.IsZero() {
		return local
	}
	return remote.UTC()
}
