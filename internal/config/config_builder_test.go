package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.overrides)
	assert.Nil(t, b.defaults)
	assert.Nil(t, b.file)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LayerPrecedence(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.file = &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "file:9000", RetryCount: 5},
		Sync:    Sync{DebounceWindow: 7 * time.Second},
	}
	b.overrides = append(b.overrides,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "env:9001"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "flags.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// env перекрывает файл, файл перекрывает значения по умолчанию
	assert.Equal(t, "env:9001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5, cfg.Adapter.RetryCount)
	assert.Equal(t, 7*time.Second, cfg.Sync.DebounceWindow)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Sync.OperationTimeout)
}

func TestBuild_LaterOverrideWins(t *testing.T) {
	b := newConfigBuilder()
	b.overrides = append(b.overrides,
		&StructuredConfig{Log: Log{Level: "debug"}},
		&StructuredConfig{Log: Log{Level: "warn"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.overrides = append(b.overrides, &StructuredConfig{Log: Log{Level: "loud"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeTempFile(t, "first.json", `{"adapter":{"http_address":"first:1"}}`)
	second := writeTempFile(t, "second.yaml", "adapter:\n  http_address: second:2\n")

	b := newConfigBuilder()
	b.overrides = append(b.overrides,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.NotNil(t, b.file)
	assert.Equal(t, "second:2", b.file.Adapter.HTTPAddress)
}

func TestWithFile_NoPath(t *testing.T) {
	b := newConfigBuilder().withFile()
	assert.NoError(t, b.err)
	assert.Nil(t, b.file)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.overrides = append(b.overrides, &StructuredConfig{ConfigFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withFile()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig / GetClientConfig ─────────────────────────────────────

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADAPTER_ADDRESS", "env-host:1")
	t.Setenv("SYNC_DEBOUNCE_WINDOW", "9s")

	flags := &StructuredConfig{Adapter: Adapter{HTTPAddress: "flag-host:2"}}
	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "flag-host:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 9*time.Second, cfg.Sync.DebounceWindow)
	assert.Equal(t, "lumina.db", cfg.Storage.DB.DSN)
}

func TestGetStructuredConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_DB_DSN=dotenv.db\n"), 0o600))
	// godotenv пишет в окружение процесса, поэтому чистим за собой
	t.Setenv("STORAGE_DB_DSN", "")
	require.NoError(t, os.Unsetenv("STORAGE_DB_DSN"))

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "dotenv.db", cfg.Storage.DB.DSN)
}

func TestGetStructuredConfig_MissingExplicitDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := GetStructuredConfig(&StructuredConfig{DotEnvPath: "missing.env"})
	assert.Error(t, err)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "lumina.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "lumina-session.json", cfg.Session.TokenFile)
	assert.Equal(t, 30*time.Second, cfg.Sync.OperationTimeout)
	assert.Equal(t, 5*time.Second, cfg.Sync.DebounceWindow)
	assert.Equal(t, 4, cfg.Sync.MaxConcurrent)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestGetClientConfig_FromTOMLFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeTempFile(t, "lumina.toml", `
[adapter]
http_address = "https://notes.example.com"
request_timeout = "5s"

[sync]
operation_timeout = "12s"
max_concurrent = 2
`)

	cfg, err := GetClientConfig(&StructuredConfig{ConfigFilePath: path})
	require.NoError(t, err)

	assert.Equal(t, "https://notes.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 12*time.Second, cfg.Sync.OperationTimeout)
	assert.Equal(t, 2, cfg.Sync.MaxConcurrent)
}
