package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Name is reported in the User-Agent header.
	Name string
	// Version is the client build version.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryCount is how many times idempotent requests are retried.
	RetryCount int
	// RetryWait is the initial wait between retries.
	RetryWait time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSession tells the client where the session token comes from.
type ClientSession struct {
	TokenFile string
	Token     string
}

// ClientSync contains the timing knobs of the sync coordinator and the
// connectivity workers.
type ClientSync struct {
	OperationTimeout time.Duration
	DebounceWindow   time.Duration
	ProbeInterval    time.Duration
	ProbeTimeout     time.Duration
	SyncInterval     time.Duration
	HotPostsLimit    int
	MaxConcurrent    int
}

// ClientLog contains log output settings.
type ClientLog struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Session contains token source settings.
	Session ClientSession
	// Sync contains sync timeouts and intervals.
	Sync ClientSync
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
// flags may be nil.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Name:    cfg.App.Name,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
			RetryWait:      cfg.Adapter.RetryWait,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Session: ClientSession{
			TokenFile: cfg.Session.TokenFile,
			Token:     cfg.Session.Token,
		},
		Sync: ClientSync{
			OperationTimeout: cfg.Sync.OperationTimeout,
			DebounceWindow:   cfg.Sync.DebounceWindow,
			ProbeInterval:    cfg.Sync.ProbeInterval,
			ProbeTimeout:     cfg.Sync.ProbeTimeout,
			SyncInterval:     cfg.Sync.SyncInterval,
			HotPostsLimit:    cfg.Sync.HotPostsLimit,
			MaxConcurrent:    cfg.Sync.MaxConcurrent,
		},
		Log: ClientLog{
			File:       cfg.Log.File,
			Level:      cfg.Log.Level,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		},
	}
}
