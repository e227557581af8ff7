//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package fynemenu

import (
	"fmt"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"

	"gomenu/internal/export"
	"gomenu/internal/log"
	"gomenu/internal/menu"
)

// Run opens a Fyne window carrying the given menu definition and blocks until
// the window closes. Menu events are handed to onEvent on the Fyne goroutine.
func Run(title string, def *export.Definition, onEvent func(menu.Event)) error {
	entries, err := export.Build(def.Items)
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}

	a := app.New()
	w := a.NewWindow(title)
	w.SetContent(widget.NewLabel(title))

	if onEvent != nil {
		menu.SetEventHandler(onEvent)
		defer menu.SetEventHandler(nil)
	}

	m := menu.New(New())
	m.AppendItems(entries...)
	m.AttachWindow(Wrap(w))

	log.WithComponent("fynemenu").Info("window up", "title", title, "items", len(entries))
	w.ShowAndRun()
	return nil
}
