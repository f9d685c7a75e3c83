// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typesel

import (
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher clears a [Cache] whenever files are created, removed or
// renamed in the watched directories, so that newly available types
// are listed.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once
	err     error
}

// WatchAssets starts watching the given directories, clearing the
// given cache on changes. It must be stopped with [Watcher.Close].
func WatchAssets(c *Cache, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, err
		}
	}
	w := &Watcher{watcher: fw, done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-w.done:
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				switch {
				case event.Op&fsnotify.Create == fsnotify.Create ||
					event.Op&fsnotify.Remove == fsnotify.Remove ||
					event.Op&fsnotify.Rename == fsnotify.Rename:
					c.Clear()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				slog.Error("typesel.WatchAssets", "err", err)
			}
		}
	}()
	return w, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.once.Do(func() {
		close(w.done)
		w.err = w.watcher.Close()
	})
	return w.err
}
