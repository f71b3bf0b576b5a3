// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forest

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the given config file, on top of the given preset,
// whenever it is written and applies its atmosphere to the scene on
// the host thread, until ctx is done. Other settings are fixed once
// the forest is generated.
func (st *State) Watch(ctx context.Context, preset, file string) error {
	file, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// editors often replace files, so watch the directory
	if err := w.Add(filepath.Dir(file)); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != file || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := OpenConfig(preset, file)
				if err != nil {
					slog.Warn("forest: reloading config", "file", file, "err", err)
					continue
				}
				slog.Info("forest: reloaded config", "file", file)
				st.sched.Post(func() { st.ApplyAtmosphere(cfg) })
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("forest: watching config", "file", file, "err", err)
			}
		}
	}()
	return nil
}
