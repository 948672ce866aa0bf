package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/utils"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/fsnotify/fsnotify"
)

// tokenFile is the on-disk layout written by the sign-in flow. A file
// holding only the raw token is accepted as well.
type tokenFile struct {
	Token string `json:"token"`
}

// FileProvider reads the session from a token file and keeps it current.
type FileProvider struct {
	path        string
	staticToken string

	mu       sync.RWMutex
	current  models.Session
	onChange []func(models.Session)

	now    func() time.Time
	logger *logger.Logger
}

// NewFileProvider creates a provider and performs the initial load. A
// missing token file is not an error: the provider simply reports no
// session until the file appears.
func NewFileProvider(cfg config.ClientSession, logger *logger.Logger) (*FileProvider, error) {
	p := &FileProvider{
		path:        cfg.TokenFile,
		staticToken: strings.TrimSpace(cfg.Token),
		now:         time.Now,
		logger:      logger,
	}

	if err := p.Reload(); err != nil && !errors.Is(err, ErrNoToken) {
		return nil, err
	}

	return p, nil
}

// Session returns the current session and whether it is usable right now.
func (p *FileProvider) Session() (models.Session, bool) {
	p.mu.RLock()
	s := p.current
	p.mu.RUnlock()

	return s, s.Valid(p.now())
}

// OnChange registers fn to be called with the new session after every
// reload that changes the token. fn is also called once immediately with
// the current session.
func (p *FileProvider) OnChange(fn func(models.Session)) {
	p.mu.Lock()
	p.onChange = append(p.onChange, fn)
	current := p.current
	p.mu.Unlock()

	fn(current)
}

// Reload re-reads the token. The token file wins over the configured
// static token.
func (p *FileProvider) Reload() error {
	token, err := p.readToken()
	if err != nil && !errors.Is(err, ErrNoToken) {
		return err
	}

	var next models.Session
	if token != "" {
		claims, parseErr := utils.ParseSessionClaims(token)
		if parseErr != nil {
			// токен есть, но прочитать claims нельзя: сессии нет
			p.logger.Warn().Err(parseErr).Str("func", "FileProvider.Reload").Msg("session token is unreadable")
		} else {
			next = models.Session{UserID: claims.UserID, Token: token, ExpiresAt: claims.ExpiresAt}
		}
	}

	p.swap(next)
	if next.Token == "" {
		return ErrNoToken
	}
	return nil
}

func (p *FileProvider) swap(next models.Session) {
	p.mu.Lock()
	changed := p.current.Token != next.Token
	p.current = next
	callbacks := append([]func(models.Session){}, p.onChange...)
	p.mu.Unlock()

	if !changed {
		return
	}

	p.logger.Info().
		Str("func", "FileProvider.swap").
		Str("user_id", next.UserID).
		Bool("signed_in", next.Token != "").
		Msg("session changed")

	for _, fn := range callbacks {
		fn(next)
	}
}

func (p *FileProvider) readToken() (string, error) {
	if p.path == "" {
		if p.staticToken == "" {
			return "", ErrNoToken
		}
		return p.staticToken, nil
	}

	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		if p.staticToken != "" {
			return p.staticToken, nil
		}
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("error reading token file: %w", err)
	}

	return decodeTokenFile(data)
}

func decodeTokenFile(data []byte) (string, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrNoToken
	}

	if strings.HasPrefix(text, "{") {
		var f tokenFile
		if err := json.Unmarshal([]byte(text), &f); err != nil {
			return "", fmt.Errorf("%w: %w", ErrMalformedTokenFile, err)
		}
		if strings.TrimSpace(f.Token) == "" {
			return "", ErrNoToken
		}
		return strings.TrimSpace(f.Token), nil
	}

	if strings.ContainsAny(text, " \n\t") {
		return "", ErrMalformedTokenFile
	}
	return text, nil
}

// Store writes token to the token file, creating its directory when
// needed, and reloads. An empty token removes the file, which signs the
// client out.
func (p *FileProvider) Store(token string) error {
	if p.path == "" {
		return fmt.Errorf("no token file configured")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		if err := os.Remove(p.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error removing token file: %w", err)
		}
		if err := p.Reload(); err != nil && !errors.Is(err, ErrNoToken) {
			return err
		}
		return nil
	}

	if _, err := utils.ParseSessionClaims(token); err != nil {
		return err
	}

	data, err := json.Marshal(tokenFile{Token: token})
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("error creating token directory: %w", err)
	}
	if err = os.WriteFile(p.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing token file: %w", err)
	}

	return p.Reload()
}

// Watch reloads the session whenever the token file is written, created,
// renamed or removed. The parent directory is watched so that editors and
// sign-in flows that replace the file atomically are picked up. Watch
// blocks until ctx is done.
func (p *FileProvider) Watch(ctx context.Context) error {
	if p.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(p.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating token directory: %w", err)
	}
	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(p.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op == fsnotify.Chmod {
				continue
			}
			if err := p.Reload(); err != nil && !errors.Is(err, ErrNoToken) {
				p.logger.Err(err).Str("func", "FileProvider.Watch").Msg("error reloading session")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Err(err).Str("func", "FileProvider.Watch").Msg("token file watcher error")
		}
	}
}
