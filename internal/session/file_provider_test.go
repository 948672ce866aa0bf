package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func writeToken(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNewFileProvider_MissingFile(t *testing.T) {
	p, err := NewFileProvider(config.ClientSession{TokenFile: filepath.Join(t.TempDir(), "s.json")}, logger.Nop())
	require.NoError(t, err)

	_, ok := p.Session()
	assert.False(t, ok)
}

func TestNewFileProvider_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	token := makeToken(t, "u1", time.Now().Add(time.Hour))
	writeToken(t, path, `{"token":"`+token+`"}`)

	p, err := NewFileProvider(config.ClientSession{TokenFile: path}, logger.Nop())
	require.NoError(t, err)

	s, ok := p.Session()
	assert.True(t, ok)
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, token, s.Token)
}

func TestNewFileProvider_RawTokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	token := makeToken(t, "u2", time.Time{})
	writeToken(t, path, token+"\n")

	p, err := NewFileProvider(config.ClientSession{TokenFile: path}, logger.Nop())
	require.NoError(t, err)

	s, ok := p.Session()
	assert.True(t, ok)
	assert.Equal(t, "u2", s.UserID)
}

func TestNewFileProvider_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	writeToken(t, path, `{"token":`)

	_, err := NewFileProvider(config.ClientSession{TokenFile: path}, logger.Nop())
	assert.ErrorIs(t, err, ErrMalformedTokenFile)
}

func TestNewFileProvider_StaticTokenFallback(t *testing.T) {
	token := makeToken(t, "static", time.Time{})

	p, err := NewFileProvider(config.ClientSession{
		TokenFile: filepath.Join(t.TempDir(), "absent.json"),
		Token:     token,
	}, logger.Nop())
	require.NoError(t, err)

	s, ok := p.Session()
	assert.True(t, ok)
	assert.Equal(t, "static", s.UserID)
}

func TestSession_Expired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	writeToken(t, path, makeToken(t, "u1", time.Now().Add(time.Minute)))

	p, err := NewFileProvider(config.ClientSession{TokenFile: path}, logger.Nop())
	require.NoError(t, err)

	p.now = func() time.Time { return time.Now().Add(time.Hour) }
	s, ok := p.Session()
	assert.False(t, ok)
	// сессия просрочена, но данные не теряются
	assert.Equal(t, "u1", s.UserID)
}

func TestStore_WritesAndNotifies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "s.json")
	p, err := NewFileProvider(config.ClientSession{TokenFile: path}, logger.Nop())
	require.NoError(t, err)

	var got []models.Session
	p.OnChange(func(s models.Session) { got = append(got, s) })

	token := makeToken(t, "u9", time.Time{})
	require.NoError(t, p.Store(token))

	require.Len(t, got, 2)
	assert.Empty(t, got[0].Token)
	assert.Equal(t, "u9", got[1].UserID)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"`+token+`"}`, string(data))
}

func TestStore_EmptyTokenSignsOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	writeToken(t, path, makeToken(t, "u1", time.Time{}))

	p, err := NewFileProvider(config.ClientSession{TokenFile: path}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, p.Store(""))

	_, ok := p.Session()
	assert.False(t, ok)
	assert.NoFileExists(t, path)
}

func TestStore_RejectsGarbage(t *testing.T) {
	p, err := NewFileProvider(config.ClientSession{TokenFile: filepath.Join(t.TempDir(), "s.json")}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, p.Store("definitely not a jwt"))
}

func TestOnChange_NotCalledWhenTokenUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	writeToken(t, path, makeToken(t, "u1", time.Time{}))

	p, err := NewFileProvider(config.ClientSession{TokenFile: path}, logger.Nop())
	require.NoError(t, err)

	calls := 0
	p.OnChange(func(models.Session) { calls++ })
	require.NoError(t, p.Reload())

	assert.Equal(t, 1, calls)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.json")

	p, err := NewFileProvider(config.ClientSession{TokenFile: path}, logger.Nop())
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		seen string
	)
	p.OnChange(func(s models.Session) {
		mu.Lock()
		seen = s.UserID
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Watch(ctx) }()

	// даём watcher'у время подписаться на каталог
	require.Eventually(t, func() bool {
		writeToken(t, path, makeToken(t, "watched", time.Time{}))
		mu.Lock()
		defer mu.Unlock()
		return seen == "watched"
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatch_NoPathBlocksUntilCancel(t *testing.T) {
	p := &FileProvider{now: time.Now, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, p.Watch(ctx))
}
