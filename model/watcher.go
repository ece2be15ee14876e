package model

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a Registry in sync with its config file.
type Watcher struct {
	registry *Registry
	path     string
	fsw      *fsnotify.Watcher
	log      *slog.Logger
	done     chan struct{}
}

// Watch loads the config file into the registry and reloads it whenever the
// file changes. The parent directory is watched rather than the file itself,
// so editors that replace the file via rename are handled.
//
// The caller must call Close when done. A nil logger uses slog.Default().
func Watch(registry *Registry, path string, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}

	if err := registry.LoadFile(path); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		registry: registry,
		path:     path,
		fsw:      fsw,
		log:      log,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops watching the config file.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	base := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := w.registry.LoadFile(w.path); err != nil {
				w.log.Warn("model config reload failed", "path", w.path, "error", err)
				continue
			}
			w.log.Info("model config reloaded", "path", w.path)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("model config watch error", "path", w.path, "error", err)
		}
	}
}
