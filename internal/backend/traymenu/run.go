//go:build tray

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package traymenu

import (
	"fmt"

	"github.com/getlantern/systray"

	"gomenu/internal/export"
	"gomenu/internal/log"
	"gomenu/internal/menu"
)

// Run puts the menu definition into the system tray and blocks until the
// tray exits. Menu events are handed to onEvent on the systray goroutine.
func Run(title string, def *export.Definition, onEvent func(menu.Event)) error {
	entries, err := export.Build(def.Items)
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}

	if onEvent != nil {
		menu.SetEventHandler(onEvent)
		defer menu.SetEventHandler(nil)
	}

	logger := log.WithComponent("traymenu")
	systray.Run(func() {
		systray.SetTitle(title)
		systray.SetTooltip(title)

		m := menu.New(New())
		m.AppendItems(entries...)
		m.AttachWindow(&Tray{})
		logger.Info("tray up", "title", title, "items", len(entries))
	}, func() {
		logger.Info("tray exited")
	})
	return nil
}
