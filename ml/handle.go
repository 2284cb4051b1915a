package ml

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Handle is the process-wide, read-once model. The classifier it points to is
// never mutated; Reload swaps in a freshly loaded one.
type Handle struct {
	path    string
	current atomic.Pointer[loadedModel]
}

type loadedModel struct {
	Classifier
}

// OpenHandle loads the artifact at path. A load failure is returned to the
// caller; there is no fallback model.
func OpenHandle(path string) (*Handle, error) {
	h := &Handle{path: path}
	if err := h.Reload(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handle) Path() string {
	return h.path
}

func (h *Handle) Predict(samples [][]float64) ([]int, error) {
	return h.current.Load().Predict(samples)
}

// Reload reads the artifact again. On failure the previous model stays active.
func (h *Handle) Reload() error {
	model, err := LoadModel(h.path)
	if err != nil {
		return err
	}
	h.current.Store(&loadedModel{Classifier: model})
	return nil
}

// Watch reloads the model whenever the artifact file is written or replaced.
// It blocks until ctx is done.
func (h *Handle) Watch(ctx context.Context, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create model watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and deploy tools replace files by rename,
	// which drops a watch placed on the file itself.
	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(h.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := h.Reload(); err != nil {
				logger.Warn("model reload failed, keeping previous model",
					zap.String("path", h.path), zap.Error(err))
				continue
			}
			logger.Info("model reloaded", zap.String("path", h.path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("model watcher error", zap.Error(err))
		}
	}
}
