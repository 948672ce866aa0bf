package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(Defaults())
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *ClientConfig) {},
		},
		{
			name:    "empty dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative retry count",
			mutate:  func(c *ClientConfig) { c.Adapter.RetryCount = -1 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero operation timeout",
			mutate:  func(c *ClientConfig) { c.Sync.OperationTimeout = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:   "zero debounce is allowed",
			mutate: func(c *ClientConfig) { c.Sync.DebounceWindow = 0 },
		},
		{
			name:    "negative debounce",
			mutate:  func(c *ClientConfig) { c.Sync.DebounceWindow = -time.Second },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "no concurrency",
			mutate:  func(c *ClientConfig) { c.Sync.MaxConcurrent = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "negative log backups",
			mutate:  func(c *ClientConfig) { c.Log.MaxBackups = -1 },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
