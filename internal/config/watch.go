package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// ErrNoConfigFile is returned by Watch when Load did not read a file.
var ErrNoConfigFile = errors.New("no config file to watch")

// Watch reloads the configuration whenever the file read by the last Load is
// written, and hands every valid result to onChange. Invalid edits go to
// onError and leave the previous configuration in place. Watch blocks until
// ctx is cancelled.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file are still seen.
func (l *Loader) Watch(ctx context.Context, onChange func(*Config), onError func(error)) error {
	file := l.used
	if file == "" {
		return ErrNoConfigFile
	}
	file = filepath.Clean(file)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(file), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := l.Load()
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(fmt.Errorf("config watcher: %w", err))
			}
		}
	}
}

// WatchInBackground runs Watch on its own goroutine. The returned stop
// function cancels the watch, waits for it to return, and reports its error.
// Callers stop the watch before tearing down whatever onChange feeds.
func (l *Loader) WatchInBackground(ctx context.Context, onChange func(*Config), onError func(error)) (stop func() error) {
	ctx, cancel := context.WithCancel(ctx)
	var g errgroup.Group
	g.Go(func() error { return l.Watch(ctx, onChange, onError) })
	return func() error {
		cancel()
		return g.Wait()
	}
}
