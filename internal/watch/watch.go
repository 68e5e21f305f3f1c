// Package watch recompiles shader sources when they change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/shaderkit/internal/ctxlog"
)

// DefaultSettle is how long a file must stay quiet after its last event
// before it is rebuilt. Editors commonly truncate and then write on save.
const DefaultSettle = 100 * time.Millisecond

// Handler is called with the path of a changed source file. A returned error
// is logged and the watch continues.
type Handler func(ctx context.Context, path string) error

// Watcher reports changes to files with a given extension under a root
// directory, including directories created after the watch started.
type Watcher struct {
	Root      string
	Extension string
	// Skip, when set, excludes matching files from the watch.
	Skip func(path string) bool
	// Settle is the quiet period before a changed file is handled.
	Settle time.Duration

	fsw     *fsnotify.Watcher
	last    map[string]time.Time
	pending map[string]*time.Timer
	due     chan string
	stop    chan struct{}
}

// New creates a Watcher. Run starts it.
func New(root, extension string) *Watcher {
	return &Watcher{
		Root:      root,
		Extension: extension,
		Settle:    DefaultSettle,
	}
}

// Run watches until ctx is cancelled. A burst of events for one file results
// in a single call to handle once the file has been quiet for Settle. Calls
// are made from the Run goroutine, one at a time. It returns nil on
// cancellation.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	logger := ctxlog.FromContext(ctx)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()
	w.fsw = fsw
	w.last = make(map[string]time.Time)
	w.pending = make(map[string]*time.Timer)
	w.due = make(chan string)
	w.stop = make(chan struct{})
	defer w.stopTimers()

	if err := w.addTree(w.Root); err != nil {
		return err
	}
	logger.Info("Watching for shader changes.", "root", w.Root)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch stopped.")
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)
		case path := <-w.due:
			w.handleDue(ctx, path, handle)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("File watcher error.", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	logger := ctxlog.FromContext(ctx)

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				logger.Warn("Failed to watch new directory.", "path", event.Name, "error", err)
			}
			return
		}
	}

	if !w.Relevant(event) {
		return
	}

	logger.Debug("Shader source changed.", "path", event.Name, "op", event.Op.String())
	w.last[event.Name] = time.Now()
	if timer, ok := w.pending[event.Name]; ok {
		timer.Reset(w.Settle)
		return
	}
	path := event.Name
	w.pending[path] = time.AfterFunc(w.Settle, func() {
		select {
		case w.due <- path:
		case <-w.stop:
		}
	})
}

// handleDue runs handle for path unless an event arrived after its timer was
// armed, in which case the reset timer delivers path again later.
func (w *Watcher) handleDue(ctx context.Context, path string, handle Handler) {
	if _, ok := w.pending[path]; !ok {
		return
	}
	if time.Since(w.last[path]) < w.Settle {
		return
	}
	delete(w.pending, path)
	delete(w.last, path)

	if err := handle(ctx, path); err != nil {
		ctxlog.FromContext(ctx).Error("Rebuild failed.", "path", path, "error", err)
	}
}

func (w *Watcher) stopTimers() {
	close(w.stop)
	for _, timer := range w.pending {
		timer.Stop()
	}
}

// Relevant reports whether event should trigger a rebuild.
func (w *Watcher) Relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	if !strings.HasSuffix(event.Name, w.Extension) {
		return false
	}
	if w.Skip != nil && w.Skip(event.Name) {
		return false
	}
	return true
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
