// Package fsnotify provides a recursive file watcher backed by fsnotify.
package fsnotify

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
	"github.com/custodia-labs/diffwatch/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher watches a directory tree. fsnotify watches are not recursive, so
// every directory is added individually and new directories are added as
// they appear. The repository metadata directory is never descended into.
type Watcher struct {
	now func() time.Time
}

// New creates a new recursive watcher.
func New() *Watcher {
	return &Watcher{now: time.Now}
}

// watchSession holds the state of a single Watch call.
type watchSession struct {
	fw   *fsnotify.Watcher
	dirs map[string]struct{}
}

// Watch subscribes to root and delivers events to handle until ctx is done.
// Cancellation is checked between events only.
func (w *Watcher) Watch(ctx context.Context, root string, handle driven.EventHandler) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	session := &watchSession{fw: fw, dirs: make(map[string]struct{})}
	if err := session.addTree(root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	logger.Debug("Watching %d directories under %s", len(session.dirs), root)

	for {
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			handle(ctx, session.toChangeEvent(ev, w.now()))

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error: %v", err)
		}
	}
}

// addTree adds root and every directory below it, skipping metadata dirs.
// Unreadable subdirectories are skipped with a warning.
func (s *watchSession) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("Skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == domain.MetadataDirName {
			return filepath.SkipDir
		}
		if err := s.fw.Add(path); err != nil {
			if path == root {
				return err
			}
			logger.Warn("Cannot watch %s: %v", path, err)
			return filepath.SkipDir
		}
		s.dirs[path] = struct{}{}
		return nil
	})
}

// toChangeEvent converts an fsnotify event, tracking directory creation
// and removal so that recursive coverage is maintained.
func (s *watchSession) toChangeEvent(ev fsnotify.Event, at time.Time) domain.ChangeEvent {
	change := domain.ChangeEvent{
		Path:       ev.Name,
		ObservedAt: at,
		Op:         toChangeOp(ev.Op),
	}

	info, err := os.Lstat(ev.Name)
	switch {
	case err == nil:
		change.IsDirectory = info.IsDir()
	case errors.Is(err, fs.ErrNotExist):
		_, change.IsDirectory = s.dirs[ev.Name]
	}

	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		delete(s.dirs, ev.Name)
	}

	if ev.Has(fsnotify.Create) && change.IsDirectory && filepath.Base(ev.Name) != domain.MetadataDirName {
		if err := s.addTree(ev.Name); err != nil {
			logger.Warn("Cannot watch new directory %s: %v", ev.Name, err)
		}
	}

	return change
}

func toChangeOp(op fsnotify.Op) domain.ChangeOp {
	switch {
	case op.Has(fsnotify.Create):
		return domain.ChangeOpCreate
	case op.Has(fsnotify.Write):
		return domain.ChangeOpWrite
	case op.Has(fsnotify.Remove):
		return domain.ChangeOpRemove
	case op.Has(fsnotify.Rename):
		return domain.ChangeOpRename
	default:
		return domain.ChangeOpChmod
	}
}
