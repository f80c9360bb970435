package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	"sorarelay/internal/entity"
)

// FileSource serves relay endpoints from a TOML file for deployments
// without a database. Watch reloads the file on change and invokes a
// callback, so the pool cache can be invalidated.
type FileSource struct {
	log  *slog.Logger
	path string

	mu   sync.RWMutex
	rows []entity.EndpointConfig

	watcher  *fsnotify.Watcher
	onReload func()
	done     chan struct{}
}

type fileDoc struct {
	Endpoints []fileEndpoint `toml:"endpoints"`
}

type fileEndpoint struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Enabled bool   `toml:"enabled"`
}

func NewFileSource(log *slog.Logger, path string) (*FileSource, error) {
	f := &FileSource{log: log, path: path, done: make(chan struct{})}
	if err := f.reload(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FileSource) reload() error {
	var doc fileDoc
	if _, err := toml.DecodeFile(f.path, &doc); err != nil {
		return fmt.Errorf("decode endpoints file: %w", err)
	}
	rows := make([]entity.EndpointConfig, 0, len(doc.Endpoints))
	for i, e := range doc.Endpoints {
		rows = append(rows, entity.EndpointConfig{
			ID:      int64(i + 1),
			URL:     e.URL,
			APIKey:  e.APIKey,
			Enabled: e.Enabled,
		})
	}
	f.mu.Lock()
	f.rows = rows
	f.mu.Unlock()
	return nil
}

// ListEndpointConfigs returns the last successfully loaded rows.
func (f *FileSource) ListEndpointConfigs(ctx context.Context) ([]entity.EndpointConfig, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]entity.EndpointConfig, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

// Watch reloads the file on change and then calls onReload. Events are
// debounced; editors emit several writes per save.
func (f *FileSource) Watch(onReload func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(f.path)); err != nil {
		w.Close()
		return fmt.Errorf("watch directory: %w", err)
	}
	f.watcher = w
	f.onReload = onReload
	go f.watchLoop()
	return nil
}

func (f *FileSource) watchLoop() {
	var debounce *time.Timer
	for {
		select {
		case <-f.done:
			return
		case ev, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(f.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, f.reloadAndNotify)
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.log.Warn("endpoints file watch error", "err", err)
		}
	}
}

func (f *FileSource) reloadAndNotify() {
	if err := f.reload(); err != nil {
		f.log.Error("endpoints file reload failed", "path", f.path, "err", err)
		return
	}
	f.log.Info("endpoints file reloaded", "path", f.path)
	if f.onReload != nil {
		f.onReload()
	}
}

func (f *FileSource) Close() error {
	close(f.done)
	if f.watcher != nil {
		return f.watcher.Close()
	}
	return nil
}
