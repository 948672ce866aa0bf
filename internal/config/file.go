package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the config file. The same
// keys are used for JSON, YAML and TOML.
type StructuredFileConfig struct {
	App struct {
		Name    string `json:"name" yaml:"name" toml:"name"`
		Version string `json:"version" yaml:"version" toml:"version"`
	} `json:"app" yaml:"app" toml:"app"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
		RetryCount     int      `json:"retry_count" yaml:"retry_count" toml:"retry_count"`
		RetryWait      Duration `json:"retry_wait" yaml:"retry_wait" toml:"retry_wait"`
	} `json:"adapter" yaml:"adapter" toml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn" toml:"dsn"`
		} `json:"db" yaml:"db" toml:"db"`
	} `json:"storage" yaml:"storage" toml:"storage"`

	Session struct {
		TokenFile string `json:"token_file" yaml:"token_file" toml:"token_file"`
		Token     string `json:"token" yaml:"token" toml:"token"`
	} `json:"session" yaml:"session" toml:"session"`

	Sync struct {
		OperationTimeout Duration `json:"operation_timeout" yaml:"operation_timeout" toml:"operation_timeout"`
		DebounceWindow   Duration `json:"debounce_window" yaml:"debounce_window" toml:"debounce_window"`
		ProbeInterval    Duration `json:"probe_interval" yaml:"probe_interval" toml:"probe_interval"`
		ProbeTimeout     Duration `json:"probe_timeout" yaml:"probe_timeout" toml:"probe_timeout"`
		SyncInterval     Duration `json:"interval" yaml:"interval" toml:"interval"`
		HotPostsLimit    int      `json:"hot_posts_limit" yaml:"hot_posts_limit" toml:"hot_posts_limit"`
		MaxConcurrent    int      `json:"max_concurrent" yaml:"max_concurrent" toml:"max_concurrent"`
	} `json:"sync" yaml:"sync" toml:"sync"`

	Log struct {
		File       string `json:"file" yaml:"file" toml:"file"`
		Level      string `json:"level" yaml:"level" toml:"level"`
		MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
		MaxBackups int    `json:"max_backups" yaml:"max_backups" toml:"max_backups"`
		MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
	} `json:"log" yaml:"log" toml:"log"`
}

// parseFile decodes the config file, picking the format by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", "":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	case ".toml":
		err = toml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    f.App.Name,
			Version: f.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			RetryCount:     f.Adapter.RetryCount,
			RetryWait:      time.Duration(f.Adapter.RetryWait),
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
		},
		Session: Session{
			TokenFile: f.Session.TokenFile,
			Token:     f.Session.Token,
		},
		Sync: Sync{
			OperationTimeout: time.Duration(f.Sync.OperationTimeout),
			DebounceWindow:   time.Duration(f.Sync.DebounceWindow),
			ProbeInterval:    time.Duration(f.Sync.ProbeInterval),
			ProbeTimeout:     time.Duration(f.Sync.ProbeTimeout),
			SyncInterval:     time.Duration(f.Sync.SyncInterval),
			HotPostsLimit:    f.Sync.HotPostsLimit,
			MaxConcurrent:    f.Sync.MaxConcurrent,
		},
		Log: Log{
			File:       f.Log.File,
			Level:      f.Log.Level,
			MaxSizeMB:  f.Log.MaxSizeMB,
			MaxBackups: f.Log.MaxBackups,
			MaxAgeDays: f.Log.MaxAgeDays,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in every supported file format, and from integer
// nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

// UnmarshalText is used by the YAML and TOML decoders.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
