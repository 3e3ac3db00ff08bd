package hotload

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func TestRelevant(t *testing.T) {
	opts := Options{Extension: ".liquid", IgnorePatterns: []string{".#*", "*~"}}

	testCases := []struct {
		path     string
		expected bool
	}{
		{"sections/hero.liquid", true},
		{"sections/hero.json", false},
		{"sections/.#hero.liquid", false},
		{"sections/hero.liquid~", false},
	}
	for _, tc := range testCases {
		if got := opts.relevant(tc.path); got != tc.expected {
			t.Errorf("relevant(%q): expected %v, got %v", tc.path, tc.expected, got)
		}
	}
}

func TestHandleEventDetectsContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.liquid")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := Options{Dir: dir, Extension: ".liquid", Logger: nopLogger()}
	cache, err := scanState(opts)
	if err != nil {
		t.Fatal(err)
	}

	write := fsnotify.Event{Name: path, Op: fsnotify.Write}
	if handleEvent(opts, cache, write) {
		t.Error("expected unchanged content to be ignored")
	}

	if err := os.WriteFile(path, []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !handleEvent(opts, cache, write) {
		t.Error("expected changed content to be detected")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !handleEvent(opts, cache, fsnotify.Event{Name: path, Op: fsnotify.Remove}) {
		t.Error("expected removal of a tracked file to be detected")
	}
	if _, ok := cache[path]; ok {
		t.Error("expected removed file to leave the cache")
	}
}

func TestHandleEventIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := Options{Dir: dir, Extension: ".liquid", Logger: nopLogger()}

	if handleEvent(opts, stateCache{}, fsnotify.Event{Name: path, Op: fsnotify.Create}) {
		t.Error("expected non-template file to be ignored")
	}
}

func TestWatchTriggersHook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.liquid")
	if err := os.WriteFile(path, []byte("v0"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, Options{
			Dir:       dir,
			Extension: ".liquid",
			Debounce:  20 * time.Millisecond,
			Logger:    nopLogger(),
		}, func() { calls.Add(1) })
	}()

	// the watcher may not be registered yet; keep changing the file until it fires
	deadline := time.Now().Add(5 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		if err := os.WriteFile(path, []byte("v"+time.Now().String()), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(100 * time.Millisecond)
	}
	if calls.Load() == 0 {
		t.Fatal("expected hook to be called after a change")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), Options{Dir: filepath.Join(t.TempDir(), "nope"), Logger: nopLogger()}, func() {})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)
	defer d.stop()

	for range 5 {
		d.arm()
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-d.C():
	case <-time.After(time.Second):
		t.Fatal("expected debounced tick")
	}
	select {
	case <-d.C():
		t.Fatal("expected a single tick for a burst")
	case <-time.After(100 * time.Millisecond):
	}
}
