// Package hotload watches a directory of templates and triggers a hook when their
// content really changes.
package hotload

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hyldmo/shopify-codegen/pkg/utils/log"
)

// DefaultDebounce is used when Options.Debounce is not positive.
const DefaultDebounce = 300 * time.Millisecond

// Func defines the type for the hot-reloading hook function.
type Func func()

// Options configures a watch.
type Options struct {
	Dir            string          // watched directory, not recursive
	Extension      string          // only files with this extension, all when empty
	IgnorePatterns []string        // filepath.Match patterns against the base name
	Debounce       time.Duration   // quiet period before the hook runs
	Logger         *zerolog.Logger // global logger when nil
}

func (o Options) debounce() time.Duration {
	if o.Debounce <= 0 {
		return DefaultDebounce
	}
	return o.Debounce
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.GetLogger()
}

// fileState stores the essential metadata and content hash of a file to detect real changes.
type fileState struct {
	modTime time.Time
	size    int64
	hash    string
}

// stateCache is a map from file path to its last known state.
type stateCache map[string]fileState

// calculateFileHash computes the MD5 of a file's content.
func calculateFileHash(filePath string) string {
	file, err := os.Open(filePath)
	if err != nil {
		return ""
	}
	defer func() {
		_ = file.Close()
	}()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return ""
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}

func statFile(path string) (fileState, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fileState{}, false
	}
	return fileState{modTime: info.ModTime(), size: info.Size(), hash: calculateFileHash(path)}, true
}

// relevant reports whether a file name passes the extension filter and ignore patterns.
func (o Options) relevant(path string) bool {
	name := filepath.Base(path)
	if o.Extension != "" && !strings.HasSuffix(name, o.Extension) {
		return false
	}
	for _, pattern := range o.IgnorePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return false
		}
	}
	return true
}

// scanState builds the initial cache of every relevant file in the directory.
func scanState(o Options) (stateCache, error) {
	entries, err := os.ReadDir(o.Dir)
	if err != nil {
		return nil, err
	}
	cache := make(stateCache, len(entries))
	for _, e := range entries {
		path := filepath.Join(o.Dir, e.Name())
		if e.IsDir() || !o.relevant(path) {
			continue
		}
		if st, ok := statFile(path); ok {
			cache[path] = st
		}
	}
	return cache, nil
}
