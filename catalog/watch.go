package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog whenever vocabulary files below its directory
// change. Changes are collected for the debounce interval before a reload.
// Watch blocks until ctx is done.
func (c *Catalog) Watch(ctx context.Context) error {
	if c.dir == "" {
		return ErrNoDirectory
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := c.addWatches(fsw, c.dir); err != nil {
		return err
	}

	c.logger.Info("Vocabulary watcher started",
		"dir", c.dir,
		"debounce", c.debounce)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if c.handleEvent(fsw, event) {
				pending = true
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			c.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			if !pending {
				continue
			}
			pending = false
			_ = c.Reload(ctx)
		}
	}
}

// handleEvent reports whether event touches a vocabulary file. New
// directories are watched as they appear.
func (c *Catalog) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) bool {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := c.addWatches(fsw, event.Name); err != nil {
				c.logger.Warn("Failed to watch new directory",
					"path", event.Name,
					"error", err)
			}
			return true
		}
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}

	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".yaml", ".yml":
		c.logger.Debug("Vocabulary change detected",
			"path", event.Name,
			"op", event.Op.String())
		return true
	}
	return false
}

// addWatches watches root and every non-hidden directory below it.
func (c *Catalog) addWatches(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if path != root && strings.HasPrefix(base, ".") {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			c.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		}
		return nil
	})
}
