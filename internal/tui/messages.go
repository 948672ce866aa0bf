package tui

import (
	"github.com/MKhiriev/lumina-sync/models"
)

type tickMsg struct{}

type syncDoneMsg struct {
	report models.SyncReport
	err    error
}

// syncedMsg is a report pushed by the connectivity trigger.
type syncedMsg struct {
	report models.SyncReport
}

type listLoadedMsg struct {
	notes []models.Note
	posts []models.Post
	err   error
}

type toggleDoneMsg struct {
	action  string
	outcome models.ToggleOutcome
	err     error
}
