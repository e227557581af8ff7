/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"gomenu/internal/log"
)

// Watcher reloads a definition file whenever it changes on disk and hands
// each successfully parsed definition to a callback. Parse and schema errors
// are logged and the previous definition stays in effect.
type Watcher struct {
	path string
	fw   *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching path. The callback runs on the watcher's goroutine;
// it is not called for the initial file content, only for changes.
func Watch(path string, fn func(*Definition)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	// watch the directory, not the file: editors replace files by rename,
	// which drops a direct file watch
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{path: path, fw: fw, done: make(chan struct{})}
	go w.loop(fn)
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop(fn func(*Definition)) {
	defer close(w.done)
	logger := log.WithComponent("export.watch")
	base := filepath.Base(w.path)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			def, err := LoadFile(w.path)
			if err != nil {
				logger.Warn("definition reload failed", "path", w.path, "error", err)
				continue
			}
			logger.Info("definition reloaded", "path", w.path, "items", len(def.Items))
			fn(def)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
