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
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"gomenu/internal/backend"
)

// predefinedAction performs the platform-conventional behavior for a
// predefined item. Clipboard kinds forward the matching shortcut to the
// focused widget; Fyne has no app-global clipboard commands.
func predefinedAction(kind backend.PredefinedKind, meta *backend.AboutMetadata) {
	app := fyne.CurrentApp()
	switch kind {
	case backend.PredefinedQuit:
		app.Quit()
	case backend.PredefinedCloseWindow:
		if w := activeWindow(app); w != nil {
			w.Close()
		}
	case backend.PredefinedMinimize:
		// Fyne exposes no programmatic minimize; nothing to do.
	case backend.PredefinedCopy:
		forwardShortcut(app, fyne.KeyC)
	case backend.PredefinedCut:
		forwardShortcut(app, fyne.KeyX)
	case backend.PredefinedPaste:
		forwardShortcut(app, fyne.KeyV)
	case backend.PredefinedSelectAll:
		forwardShortcut(app, fyne.KeyA)
	case backend.PredefinedAbout:
		showAbout(app, meta)
	}
}

func activeWindow(app fyne.App) fyne.Window {
	if d, ok := app.Driver().(interface{ AllWindows() []fyne.Window }); ok {
		ws := d.AllWindows()
		if len(ws) > 0 {
			return ws[0]
		}
	}
	return nil
}

func forwardShortcut(app fyne.App, key fyne.KeyName) {
	w := activeWindow(app)
	if w == nil {
		return
	}
	if f, ok := w.Canvas().Focused().(fyne.Shortcutable); ok {
		f.TypedShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierControl})
	}
}

func showAbout(app fyne.App, meta *backend.AboutMetadata) {
	w := activeWindow(app)
	if w == nil || meta == nil {
		return
	}
	var b strings.Builder
	b.WriteString(meta.Name)
	if meta.Version != "" {
		b.WriteString(" " + meta.Version)
	}
	if len(meta.Authors) > 0 {
		b.WriteString("\n" + strings.Join(meta.Authors, ", "))
	}
	if meta.Comments != "" {
		b.WriteString("\n\n" + meta.Comments)
	}
	if meta.Copyright != "" {
		b.WriteString("\n" + meta.Copyright)
	}
	if meta.Website != "" {
		b.WriteString("\n" + meta.Website)
	}
	dialog.ShowInformation("About", b.String(), w)
}
