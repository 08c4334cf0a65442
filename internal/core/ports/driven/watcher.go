package driven

import "context"

// UploadWatcher observes a directory and reports newly created files that
// look like uploads. It stands in for an interactive upload control when
// the app runs in a terminal.
type UploadWatcher interface {
	// Watch starts observing dir until ctx is cancelled. Every newly
	// created file whose extension matches one of exts is reported on
	// the returned channel as an absolute path. Errors on the second
	// channel are informational; the watcher keeps running after them.
	Watch(ctx context.Context, dir string, exts []string) (<-chan string, <-chan error, error)

	// Close stops the watcher and releases OS resources.
	Close() error
}
