package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watch reloads the config at path whenever it changes and passes the result
// to onChange. Invalid files are reported through the error argument and the
// previous Site keeps serving. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file so that editors that
// save by rename are still seen.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(Site, error)) error {
	expanded, err := ExpandTilde(path)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logrus.WithField("path", abs).Debug("watching site config")

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	var (
		pending *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(debounce)
			} else {
				pending.Reset(debounce)
			}
			fire = pending.C

		case <-fire:
			fire = nil
			s := &Store{Path: abs}
			if err := s.Load(); err != nil {
				onChange(Site{}, err)
				continue
			}
			onChange(s.Site, nil)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Warn("config watcher error")
		}
	}
}
