package classmap

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"terms/pkg/logger"
	"terms/pkg/resolver"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a class map file into a registry whenever it changes.
type Watcher struct {
	path     string
	registry *resolver.Registry
	watcher  *fsnotify.Watcher

	closeOnce sync.Once
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// Watch loads path into registry and keeps reloading it on change until ctx
// is done or Close is called. A file that fails to load is logged and the
// registry keeps its previous entries.
func Watch(ctx context.Context, path string, registry *resolver.Registry) (*Watcher, error) {
	path = filepath.Clean(path)

	entries, err := Load(path)
	if err != nil {
		return nil, err
	}
	registry.Replace(entries)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	// editors replace files on save, watching the directory survives that
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()

		return nil, fmt.Errorf("could not watch class map directory: %w", err)
	}

	w := &Watcher{
		path:     path,
		registry: registry,
		watcher:  fsw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go w.run(ctx)

	return w, nil
}

// Close stops watching and waits for the watch loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		err = w.watcher.Close()
	})

	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ctx = logger.WithFields(ctx, zap.String("classMap", w.path))
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn(ctx, "class map watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	entries, err := Load(w.path)
	if err != nil {
		logger.Error(ctx, "could not reload class map, keeping previous entries", zap.Error(err))

		return
	}

	w.registry.Replace(entries)
	logger.Info(ctx, "class map reloaded", zap.Int("taxonomies", len(entries)))
}
