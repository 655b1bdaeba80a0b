package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/speakeasy-api/openapi-gen/internal/ctxlog"
)

// DebounceInterval is how long Watch waits for writes to settle before reporting a change.
var DebounceInterval = 100 * time.Millisecond

// Watch calls onChange after the file at path is written or recreated, until ctx is done.
// Bursts of events within DebounceInterval result in a single call. Watch does not return while
// a call to onChange is still running.
func Watch(ctx context.Context, path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file on save are still picked up.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	logger := ctxlog.FromContext(ctx)

	// Callbacks already running when ctx is done are waited for.
	var inFlight sync.WaitGroup
	defer inFlight.Wait()

	var debounce *time.Timer
	stop := func() {
		if debounce != nil && debounce.Stop() {
			inFlight.Done()
		}
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.Debug("manifest changed", "path", absPath, "op", event.Op.String())

			stop()
			inFlight.Add(1)
			debounce = time.AfterFunc(DebounceInterval, func() {
				defer inFlight.Done()
				onChange()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
