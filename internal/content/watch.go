package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultWatchDebounce = 500 * time.Millisecond

// Watcher re-runs a callback whenever files under a content root change.
// Bursts of events are collapsed into one call after the debounce period.
type Watcher struct {
	root     string
	debounce time.Duration
	onChange func(ctx context.Context)
	logger   *zap.Logger
}

// NewWatcher creates a Watcher. A zero debounce uses 500ms.
func NewWatcher(root string, debounce time.Duration, onChange func(ctx context.Context), logger *zap.Logger) *Watcher {
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{root: root, debounce: debounce, onChange: onChange, logger: logger}
}

// ReimportOnChange returns a Watcher callback that imports root again.
func ReimportOnChange(loader *Loader, root string, logger *zap.Logger) func(ctx context.Context) {
	return func(ctx context.Context) {
		result, err := loader.Import(ctx, root)
		if err != nil {
			logger.Error("content re-import failed", zap.Error(err))
			return
		}
		for _, fileErr := range result.Errors {
			logger.Warn("content file skipped", zap.String("path", fileErr.Path), zap.Error(fileErr.Err))
		}
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addTree(fsw, w.root); err != nil {
		return err
	}
	w.logger.Info("watching content", zap.String("root", w.root))

	var (
		mu    sync.Mutex
		timer *time.Timer
		wg    sync.WaitGroup
	)
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		wg.Add(1)
		timer = time.AfterFunc(w.debounce, func() {
			defer wg.Done()
			if ctx.Err() == nil {
				w.onChange(ctx)
			}
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		mu.Unlock()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			// 新建的子目录需要单独加入监听
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(fsw, event.Name); err != nil {
						w.logger.Warn("watch new directory failed", zap.String("path", event.Name), zap.Error(err))
					}
				}
			}
			schedule()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := fsw.Add(path); err != nil {
				return fmt.Errorf("watch %q: %w", path, err)
			}
		}
		return nil
	})
}
