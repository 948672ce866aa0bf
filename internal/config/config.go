// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional config file, environment
// variables (including a .env file) and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application name and version reported to the server.
	App App `envPrefix:"APP_"`

	// Adapter holds the server address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session tells the client where to find the bearer token.
	Session Session `envPrefix:"SESSION_"`

	// Sync holds timeouts and intervals of the sync subsystem.
	Sync Sync `envPrefix:"SYNC_"`

	// Log holds log file and rotation settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON, YAML or TOML file.
	// Env: CONFIG, flag: -c / --config.
	ConfigFilePath string `env:"CONFIG"`

	// DotEnvPath is an explicit .env file. When empty, ./.env is loaded if
	// it exists. Env: DOTENV, flag: --env-file.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level values.
type App struct {
	// Name is sent in the User-Agent header.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings of the HTTP transport to the server.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme
	// (e.g. "localhost:8080", "https://lumina.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single HTTP request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times idempotent requests are retried.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWait is the initial wait between retries.
	// Env: ADAPTER_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path or file: URI.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session points at the authentication token issued elsewhere.
type Session struct {
	// TokenFile is a JSON file holding {"token": "..."}; it is watched for
	// changes. Env: SESSION_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`

	// Token is a bearer token given directly. It takes effect only when no
	// TokenFile is configured. Env: SESSION_TOKEN
	Token string `env:"TOKEN"`
}

// Sync holds the timing knobs of the sync subsystem.
type Sync struct {
	// OperationTimeout bounds a single synchronizer call; compound calls get
	// twice as long. Env: SYNC_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`

	// DebounceWindow is the minimum gap between two connectivity-triggered
	// syncs. Env: SYNC_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`

	// ProbeInterval is how often reachability of the server is checked.
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeTimeout bounds a single reachability check.
	// Env: SYNC_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// SyncInterval is how often pending operations are replayed in the
	// background. Env: SYNC_INTERVAL
	SyncInterval time.Duration `env:"INTERVAL"`

	// HotPostsLimit is the default size of the hot posts list.
	// Env: SYNC_HOT_POSTS_LIMIT
	HotPostsLimit int `env:"HOT_POSTS_LIMIT"`

	// MaxConcurrent caps the number of sync operations running at once.
	// Env: SYNC_MAX_CONCURRENT
	MaxConcurrent int `env:"MAX_CONCURRENT"`
}

// Log holds logger output settings.
type Log struct {
	// File is the log file path; empty means stdout. Env: LOG_FILE
	File string `env:"FILE"`
	// Level is a zerolog level name. Env: LOG_LEVEL
	Level string `env:"LEVEL"`
	// MaxSizeMB is the size at which the file is rotated. Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
	// MaxBackups is how many rotated files are kept. Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
	// MaxAgeDays is how long rotated files are kept. Env: LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// Defaults returns the configuration used when no source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Name: "lumina-sync"},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
			RetryCount:     2,
			RetryWait:      300 * time.Millisecond,
		},
		Storage: Storage{DB: DB{DSN: "lumina.db"}},
		Session: Session{TokenFile: "lumina-session.json"},
		Sync: Sync{
			OperationTimeout: 30 * time.Second,
			DebounceWindow:   5 * time.Second,
			ProbeInterval:    10 * time.Second,
			ProbeTimeout:     3 * time.Second,
			SyncInterval:     5 * time.Minute,
			HotPostsLimit:    20,
			MaxConcurrent:    4,
		},
		Log: Log{
			File:       "lumina-sync.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Precedence, lowest first:
//  1. Defaults
//  2. Config file (path resolved from env or flags)
//  3. Environment variables, including those loaded from .env
//  4. Command-line flags
//
// flags may be nil when no command line is involved.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(flags).
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
