package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/hoverpane/internal/logging"
)

// Watch keeps cached metadata and the file listing in sync with the
// filesystem until ctx is cancelled. While watching, the listing used for
// name lookups is cached. onChange, if set, receives every changed path.
func (v *Vault) Watch(ctx context.Context, onChange func(rel string)) error {
	log := logging.FromContext(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create vault watcher: %w", err)
	}
	if err := v.addTree(w, v.root); err != nil {
		_ = w.Close()
		return err
	}

	v.mu.Lock()
	v.watching = true
	v.index = nil
	v.mu.Unlock()

	go func() {
		defer func() {
			_ = w.Close()
			v.mu.Lock()
			v.watching = false
			v.index = nil
			v.mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				v.handleEvent(ctx, w, ev, onChange)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("vault watcher error")
			}
		}
	}()

	log.Debug().Str("root", v.root).Msg("watching vault")
	return nil
}

func (v *Vault) handleEvent(ctx context.Context, w *fsnotify.Watcher, ev fsnotify.Event, onChange func(string)) {
	rel, ok := v.Rel(ev.Name)
	if !ok {
		return
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := v.addTree(w, ev.Name); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Str("dir", rel).Msg("failed to watch new folder")
			}
		}
	}
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return
	}

	v.Invalidate(rel)
	logging.FromContext(ctx).Trace().Str("path", rel).Str("op", ev.Op.String()).Msg("vault change")
	if onChange != nil {
		onChange(rel)
	}
}

// addTree watches dir and every folder below it, skipping hidden ones.
func (v *Vault) addTree(w *fsnotify.Watcher, dir string) error {
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != v.root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}
