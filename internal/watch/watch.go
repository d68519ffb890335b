// Package watch revalidates files as they are written. It follows a
// directory tree with fsnotify and checks every created or modified file
// that has a registered checker.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driving"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// DefaultRate is the default number of checks per second.
const DefaultRate = 10

// eventBufferSize bounds results not yet consumed.
const eventBufferSize = 64

// skipDirs are never watched.
var skipDirs = map[string]bool{
	"node_modules": true, "venv": true, "env": true, "__pycache__": true,
}

// Event is the outcome of revalidating one file.
type Event struct {
	Path   string
	Result domain.CheckResult
}

// Watcher revalidates files under a root directory.
type Watcher struct {
	root    string
	syntax  driving.SyntaxService
	limiter *rate.Limiter

	mu  sync.Mutex
	fsw *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithRate limits checks to perSecond, allowing bursts of burst.
func WithRate(perSecond float64, burst int) Option {
	return func(w *Watcher) {
		if burst < 1 {
			burst = 1
		}
		w.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// New creates a watcher for root.
func New(root string, syntax driving.SyntaxService, opts ...Option) *Watcher {
	w := &Watcher{
		root:    root,
		syntax:  syntax,
		limiter: rate.NewLimiter(DefaultRate, DefaultRate),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch starts watching and returns a channel of results.
// The channel is closed when ctx is done or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", w.root, domain.ErrNotFound)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", w.root, domain.ErrInvalidInput)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if _, err := w.addTree(fsw, w.root); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, err
	}

	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	events := make(chan Event, eventBufferSize)
	go w.loop(ctx, fsw, events)
	return events, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, events chan<- Event) {
	defer close(events)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) && !w.skipped(event.Name) {
				// Files can land in the directory before it is watched.
				files, err := w.addTree(fsw, event.Name)
				if err != nil {
					logger.Warn("watch: %v", err)
				}
				for _, path := range files {
					if !w.emit(ctx, path, events) {
						return
					}
				}
				continue
			}

			path, ok := w.handleFsEvent(event)
			if !ok {
				continue
			}
			if !w.emit(ctx, path, events) {
				return
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// handleFsEvent returns the file to revalidate for event, if any.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if w.skipped(event.Name) || isDir(event.Name) {
		return "", false
	}
	if !w.syntax.Supports(event.Name) {
		return "", false
	}
	return event.Name, true
}

// emit checks path and sends the result. It returns false once ctx is done.
func (w *Watcher) emit(ctx context.Context, path string, events chan<- Event) bool {
	if err := w.limiter.Wait(ctx); err != nil {
		return false
	}
	result, err := w.check(ctx, path)
	if err != nil {
		logger.Debug("watch: %v", err)
		return true
	}

	select {
	case events <- Event{Path: path, Result: result}:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *Watcher) check(ctx context.Context, path string) (domain.CheckResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.CheckResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return w.syntax.Check(ctx, domain.NewSourceUnit(string(data), path)), nil
}

// addTree watches dir and every directory below it. It returns the
// supported files already present.
func (w *Watcher) addTree(fsw *fsnotify.Watcher, dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			if d.Type().IsRegular() && !w.skipped(path) && w.syntax.Supports(path) {
				files = append(files, path)
			}
			return nil
		}
		if path != w.root && w.skipped(path) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		logger.Debug("watch: watching %s", path)
		return nil
	})
	return files, err
}

// skipped reports whether path lies in a hidden or ignored directory
// below the root.
func (w *Watcher) skipped(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return true
	}
	if isHidden(rel) {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if skipDirs[part] {
			return true
		}
	}
	return false
}

// isHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
