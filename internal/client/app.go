package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lumina-sync/internal/adapter"
	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/service"
	"github.com/MKhiriev/lumina-sync/internal/session"
	"github.com/MKhiriev/lumina-sync/internal/store"
	"github.com/MKhiriev/lumina-sync/internal/tui"
	"github.com/MKhiriev/lumina-sync/internal/workers"
	"github.com/MKhiriev/lumina-sync/models"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	withUI    bool

	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	sessions *session.FileProvider
	monitor  *workers.ConnectivityMonitor
	services *service.ClientServices

	logger *logger.Logger
}

// Option customises an App.
type Option func(*App)

// WithDashboard makes Run show the terminal dashboard and return when the
// user quits it.
func WithDashboard() Option {
	return func(a *App) { a.withUI = true }
}

// NewApp opens local storage, restores the pending operation queues and
// wires the services. The returned App must be closed.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...Option) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessions, err := session.NewFileProvider(cfg.Session, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("load session: %w", err)
	}
	sessions.OnChange(func(s models.Session) {
		serverAdapter.SetToken(s.Token)
	})

	monitor := workers.NewConnectivityMonitor(serverAdapter, cfg.Sync, logger)
	services := service.NewClientServices(storages, serverAdapter, sessions, monitor, cfg.Sync, logger)
	if err = services.Restore(ctx); err != nil {
		storages.Close()
		return nil, fmt.Errorf("restore pending operations: %w", err)
	}

	a := &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		storages:  storages,
		adapter:   serverAdapter,
		sessions:  sessions,
		monitor:   monitor,
		services:  services,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Services exposes the sync services for one-shot commands.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// SignIn stores token as the session token. An empty token signs out.
func (a *App) SignIn(token string) error {
	if err := a.sessions.Store(token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	return nil
}

// Probe checks the server once and updates the online state.
func (a *App) Probe(ctx context.Context) bool {
	return a.monitor.Probe(ctx)
}

// Status collects the state shown by the status command.
func (a *App) Status() tui.StatusSnapshot {
	snapshot := tui.StatusSnapshot{
		Online:  a.monitor.Online(),
		Queued:  a.services.Coordinator.QueuedOperations(),
		Running: a.services.Coordinator.PendingCount(),
	}
	if s, ok := a.sessions.Session(); ok {
		snapshot.UserID = s.UserID
	}
	return snapshot
}

// Run starts the session watcher, the connectivity monitor, the
// connectivity trigger and the periodic pending sync, and blocks until ctx
// is done or, with the dashboard, until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	trigger := workers.NewConnectivityTrigger(a.services.Coordinator, a.sessions, a.monitor.Subscribe(), a.cfg.Sync, a.logger)
	var synced <-chan models.SyncReport
	if a.withUI {
		synced = trigger.Subscribe()
	}

	watchErr := make(chan error, 1)
	background := workers.NewWorkers(
		a.monitor,
		trigger,
		workers.WorkerFunc(func(ctx context.Context) {
			a.services.SyncJob.Start(ctx, a.cfg.Sync.SyncInterval)
			<-ctx.Done()
			a.services.SyncJob.Stop()
		}),
		workers.WorkerFunc(func(ctx context.Context) {
			if err := a.sessions.Watch(ctx); err != nil {
				watchErr <- err
			}
		}),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		background.Run(ctx)
	}()

	a.logger.Info().
		Str("func", "App.Run").
		Str("server", a.cfg.Adapter.HTTPAddress).
		Dur("sync_interval", a.cfg.Sync.SyncInterval).
		Msg("client started")

	var err error
	if a.withUI {
		ui := tui.New(tui.Deps{
			Coordinator:  a.services.Coordinator,
			Notes:        a.services.Notes,
			Posts:        a.services.Posts,
			Connectivity: a.monitor,
			Sessions:     a.sessions,
			Synced:       synced,
			BuildInfo:    a.buildInfo,
		}, a.logger)
		err = ui.Run(ctx)
	} else {
		select {
		case <-ctx.Done():
		case err = <-watchErr:
		}
	}

	cancel()
	<-done

	if err == nil {
		select {
		case err = <-watchErr:
		default:
		}
	}
	return err
}

// Close releases local storage.
func (a *App) Close() error {
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}
	return nil
}
