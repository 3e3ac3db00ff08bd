package hotload

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch blocks until ctx is cancelled, calling hook once per burst of real
// changes to relevant files in opts.Dir. Writes that leave a file's content
// unchanged are ignored.
func Watch(ctx context.Context, opts Options, hook Func) error {
	logger := opts.logger()

	cache, err := scanState(opts)
	if err != nil {
		return fmt.Errorf("scan %s: %w", opts.Dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(opts.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", opts.Dir, err)
	}
	logger.Debug().Str("dir", opts.Dir).Int("files", len(cache)).Msg("watching for changes")

	d := newDebouncer(opts.debounce())
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if handleEvent(opts, cache, event) {
				d.arm()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watcher error")
		case <-d.C():
			logger.Debug().Msg("change detected, running hook")
			hook()
		}
	}
}

// handleEvent updates the cache and reports whether the event is a real change.
func handleEvent(opts Options, cache stateCache, event fsnotify.Event) bool {
	name := filepath.Clean(event.Name)
	if !opts.relevant(name) {
		return false
	}
	logger := opts.logger()
	logger.Trace().Str("op", event.Op.String()).Str("file", name).Msg("fs event")

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if _, tracked := cache[name]; tracked {
			delete(cache, name)
			return true
		}
		return false
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return onWrite(cache, name)
	}
	return false
}

// onWrite compares the new content hash with the cached one.
func onWrite(cache stateCache, name string) bool {
	old, tracked := cache[name]
	st, ok := statFile(name)
	if !ok {
		if tracked {
			delete(cache, name)
			return true
		}
		return false
	}
	cache[name] = st
	if !tracked {
		return true
	}
	if old.hash != "" && st.hash != "" {
		return old.hash != st.hash
	}
	return old.size != st.size || !old.modTime.Equal(st.modTime)
}

// debouncer coalesces bursts of changes into a single tick.
type debouncer struct {
	wait  time.Duration
	timer *time.Timer
	fire  chan struct{}
}

func newDebouncer(wait time.Duration) *debouncer {
	return &debouncer{wait: wait, fire: make(chan struct{}, 1)}
}

// arm starts the timer or pushes it back if already running.
func (d *debouncer) arm() {
	if d.timer != nil {
		d.timer.Reset(d.wait)
		return
	}
	d.timer = time.AfterFunc(d.wait, func() {
		select {
		case d.fire <- struct{}{}:
		default:
		}
	})
}

func (d *debouncer) C() <-chan struct{} { return d.fire }

func (d *debouncer) stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
}
