// Package watch observes a directory for newly dropped upload files.
package watch

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/pdfchat-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.UploadWatcher = (*Watcher)(nil)

// Watcher reports files created in a watched directory. It stands in for
// an interactive upload control when pdfchat runs in a terminal: dropping
// a PDF into the directory ingests it into the running session.
type Watcher struct {
	fw *fsnotify.Watcher
}

// New creates a new directory watcher.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fw: fw}, nil
}

// Watch starts observing dir until ctx is cancelled. Created (and
// renamed-in) files whose extension matches exts are reported as absolute
// paths. Watch errors are forwarded but never stop the loop.
func (w *Watcher) Watch(
	ctx context.Context, dir string, exts []string,
) (<-chan string, <-chan error, error) {
	if err := w.fw.Add(dir); err != nil {
		return nil, nil, err
	}

	files := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(files)
		defer close(errs)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if !matches(event.Name, exts) {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil {
					abs = event.Name
				}
				logger.Debug("Watched file appeared: %s", abs)
				select {
				case files <- abs:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
				select {
				case errs <- err:
				default:
				}
			}
		}
	}()

	return files, errs, nil
}

// matches reports whether the file extension is in exts.
func matches(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// Close stops the watcher and releases OS resources.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
