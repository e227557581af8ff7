/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package menu

import (
	"gomenu/internal/accel"
	"gomenu/internal/backend"
)

// Predefined is a platform-conventional entry (separator, clipboard actions,
// window management, About). Its behavior lives in the backend adapter; the
// engine only projects it and keeps its text in sync. Predefined entries
// never publish application events.
type Predefined struct {
	leaf
	kind backend.PredefinedKind
	meta *backend.AboutMetadata
}

func (p *Predefined) Kind() Kind { return KindPredefined }

// PredefinedKind exposes which conventional item this is.
func (p *Predefined) PredefinedKind() backend.PredefinedKind { return p.kind }

// AboutMetadata returns the dialog metadata; nil for every kind but About.
func (p *Predefined) AboutMetadata() *backend.AboutMetadata { return p.meta }

func newPredefined(kind backend.PredefinedKind, meta *backend.AboutMetadata) *Predefined {
	return &Predefined{
		leaf: leaf{base: base{
			id:      nextID(),
			text:    predefinedText(kind),
			enabled: true,
			accel:   predefinedAccel(kind),
		}},
		kind: kind,
		meta: meta,
	}
}

// Separator creates a visual divider.
func Separator() *Predefined { return newPredefined(backend.PredefinedSeparator, nil) }

// Copy, Cut, Paste and SelectAll create the conventional clipboard items.
func Copy() *Predefined      { return newPredefined(backend.PredefinedCopy, nil) }
func Cut() *Predefined       { return newPredefined(backend.PredefinedCut, nil) }
func Paste() *Predefined     { return newPredefined(backend.PredefinedPaste, nil) }
func SelectAll() *Predefined { return newPredefined(backend.PredefinedSelectAll, nil) }

// Quit, CloseWindow and Minimize create the conventional window items.
func Quit() *Predefined        { return newPredefined(backend.PredefinedQuit, nil) }
func CloseWindow() *Predefined { return newPredefined(backend.PredefinedCloseWindow, nil) }
func Minimize() *Predefined    { return newPredefined(backend.PredefinedMinimize, nil) }

// About creates the conventional About item; meta may be nil.
func About(meta *backend.AboutMetadata) *Predefined {
	return newPredefined(backend.PredefinedAbout, meta)
}

func predefinedText(kind backend.PredefinedKind) string {
	switch kind {
	case backend.PredefinedCopy:
		return "&Copy"
	case backend.PredefinedCut:
		return "Cu&t"
	case backend.PredefinedPaste:
		return "&Paste"
	case backend.PredefinedSelectAll:
		return "Select &All"
	case backend.PredefinedQuit:
		return "&Quit"
	case backend.PredefinedCloseWindow:
		return "Close &Window"
	case backend.PredefinedMinimize:
		return "&Minimize"
	case backend.PredefinedAbout:
		return "&About"
	default:
		return ""
	}
}

func predefinedAccel(kind backend.PredefinedKind) *accel.Accelerator {
	switch kind {
	case backend.PredefinedCopy:
		return &accel.Accelerator{Mods: accel.ModCtrl, Key: "C"}
	case backend.PredefinedCut:
		return &accel.Accelerator{Mods: accel.ModCtrl, Key: "X"}
	case backend.PredefinedPaste:
		return &accel.Accelerator{Mods: accel.ModCtrl, Key: "V"}
	case backend.PredefinedSelectAll:
		return &accel.Accelerator{Mods: accel.ModCtrl, Key: "A"}
	case backend.PredefinedQuit:
		return &accel.Accelerator{Mods: accel.ModCtrl, Key: "Q"}
	case backend.PredefinedCloseWindow:
		return &accel.Accelerator{Mods: accel.ModCtrl, Key: "W"}
	case backend.PredefinedMinimize:
		return &accel.Accelerator{Mods: accel.ModCtrl, Key: "M"}
	default:
		return nil
	}
}
