package tui

import (
	"context"

	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/service"
	"github.com/MKhiriev/lumina-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// SyncRunner is the part of the coordinator the dashboard drives.
type SyncRunner interface {
	RefreshAndSync(ctx context.Context) <-chan service.Outcome[models.SyncReport]
	PendingCount() int
	QueuedOperations() map[models.EntityKind]int
}

// Deps is everything the dashboard reads from or acts on.
type Deps struct {
	Coordinator  SyncRunner
	Notes        service.NoteSynchronizer
	Posts        service.PostSynchronizer
	Connectivity service.ConnectivityStatus
	Sessions     service.SessionProvider
	// Synced delivers reports of background sync runs; may be nil.
	Synced    <-chan models.SyncReport
	BuildInfo models.AppBuildInfo
}

type TUI struct {
	deps   Deps
	logger *logger.Logger
}

func New(deps Deps, logger *logger.Logger) *TUI {
	return &TUI{deps: deps, logger: logger}
}

// Run shows the dashboard until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.deps)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("dashboard stopped with error")
		return err
	}
	return nil
}
