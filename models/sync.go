package models

import "time"

// SyncReport summarises one FetchAll or SyncPending run.
type SyncReport struct {
	Kind EntityKind `json:"kind"`

	// Synced counts entities confirmed by the server.
	Synced int `json:"synced"`
	// Failed counts entities left pending for the next attempt.
	Failed int `json:"failed"`
	// Skipped counts list elements that could not be parsed.
	Skipped int `json:"skipped"`
	// Deleted counts local entities removed because the server no longer has them.
	Deleted int `json:"deleted"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Duration returns how long the run took.
func (r SyncReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Add folds other into r, keeping the earliest start and the latest finish.
func (r *SyncReport) Add(other SyncReport) {
	r.Synced += other.Synced
	r.Failed += other.Failed
	r.Skipped += other.Skipped
	r.Deleted += other.Deleted
	if r.StartedAt.IsZero() || (!other.StartedAt.IsZero() && other.StartedAt.Before(r.StartedAt)) {
		r.StartedAt = other.StartedAt
	}
	if other.FinishedAt.After(r.FinishedAt) {
		r.FinishedAt = other.FinishedAt
	}
}
