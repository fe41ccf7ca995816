package tui

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/tally-cli/internal/logger"
)

// configWatcher watches the config file for on-disk changes so the TUI
// can reload settings mid-session.
type configWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan struct{}
}

// newConfigWatcher watches the directory containing path. Watching the
// directory instead of the file survives editors that replace the file
// on save.
func newConfigWatcher(path string) (*configWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close() //nolint:errcheck
		return nil, err
	}

	cw := &configWatcher{
		watcher: w,
		path:    path,
		changes: make(chan struct{}, 1),
	}
	go cw.loop()

	return cw, nil
}

// loop forwards relevant filesystem events to the changes channel.
func (cw *configWatcher) loop() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				close(cw.changes)
				return
			}
			if event.Name != cw.path {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				// Coalesce bursts into a single pending notification.
				select {
				case cw.changes <- struct{}{}:
				default:
				}
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				close(cw.changes)
				return
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}

// Changes returns the notification channel.
func (cw *configWatcher) Changes() <-chan struct{} {
	return cw.changes
}

// Close stops the watcher.
func (cw *configWatcher) Close() error {
	return cw.watcher.Close()
}
