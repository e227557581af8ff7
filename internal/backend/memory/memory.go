/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package memory implements the backend boundary with plain in-process
// structures. It exists for headless runs and for tests: widget trees are
// fully inspectable, and user input (activation, checkbox toggles) can be
// simulated deterministically.
//
// Toggle semantics deliberately mirror GTK: SetChecked on a check widget
// fires the widget's toggle notification synchronously whenever the value
// actually changes, which is exactly the feedback loop the engine's sync
// guard has to absorb.
package memory

import (
	"gomenu/internal/accel"
	"gomenu/internal/backend"
)

// WidgetKind discriminates the widgets this backend can build.
type WidgetKind int

const (
	KindItem WidgetKind = iota
	KindCheck
	KindSubmenu
	KindPredefined
)

// Widget is one native widget stand-in.
type Widget struct {
	Kind       WidgetKind
	Predefined backend.PredefinedKind // KindPredefined only
	About      *backend.AboutMetadata

	text    string
	enabled bool
	checked bool

	Child *MenuShell // KindSubmenu only

	onActivate func()
	onToggle   func(checked bool)
}

// Text returns the widget's native-form label.
func (w *Widget) Text() string { return w.text }

// Enabled reports the widget's sensitivity.
func (w *Widget) Enabled() bool { return w.enabled }

// Checked reports the check state.
func (w *Widget) Checked() bool { return w.checked }

// ClickActivate simulates the user activating the widget.
func (w *Widget) ClickActivate() {
	if w.onActivate != nil {
		w.onActivate()
	}
}

// ClickToggle simulates the user clicking a check widget: the native state
// flips first, then the toggle notification fires.
func (w *Widget) ClickToggle() {
	w.checked = !w.checked
	if w.onToggle != nil {
		w.onToggle(w.checked)
	}
}

// FireToggle re-emits the toggle notification without changing state. Tests
// use it to simulate redundant native notifications (guard re-entry).
func (w *Widget) FireToggle() {
	if w.onToggle != nil {
		w.onToggle(w.checked)
	}
}

// MenuShell is a native menu container stand-in.
type MenuShell struct {
	children  []*Widget
	Visible   bool
	Destroyed bool
}

// Items returns the shell's current children in order.
func (s *MenuShell) Items() []*Widget { return s.children }

func (s *MenuShell) Insert(h backend.Handle, i int) {
	w := h.(*Widget)
	s.children = append(s.children, nil)
	copy(s.children[i+1:], s.children[i:])
	s.children[i] = w
}

func (s *MenuShell) Remove(h backend.Handle) {
	w := h.(*Widget)
	for i, c := range s.children {
		if c == w {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

func (s *MenuShell) Len() int { return len(s.children) }
func (s *MenuShell) Show()    { s.Visible = true }
func (s *MenuShell) Hide()    { s.Visible = false }
func (s *MenuShell) Destroy() {
	s.Destroyed = true
	s.Visible = false
}

// Registration records one accelerator binding.
type Registration struct {
	Handle backend.Handle
	Accel  accel.Accelerator
}

// AccelTable records accelerator registrations.
type AccelTable struct {
	Registered []Registration
}

func (t *AccelTable) Register(h backend.Handle, a accel.Accelerator) {
	t.Registered = append(t.Registered, Registration{Handle: h, Accel: a})
}

// Popup records one context menu display.
type Popup struct {
	Shell *MenuShell
	X, Y  float64
}

// Window is a host window stand-in.
type Window struct {
	Name string

	Bar    *MenuShell // current menu bar, nil after a detach
	Bars   []*MenuShell
	Groups []backend.AccelGroup
	Popups []Popup
}

// NewWindow creates a named fake window.
func NewWindow(name string) *Window { return &Window{Name: name} }

func (w *Window) NewMenuBar() backend.Shell {
	bar := &MenuShell{}
	w.Bar = bar
	w.Bars = append(w.Bars, bar)
	return bar
}

func (w *Window) AddAccelGroup(g backend.AccelGroup) { w.Groups = append(w.Groups, g) }

func (w *Window) RemoveAccelGroup(g backend.AccelGroup) {
	for i, x := range w.Groups {
		if x == g {
			w.Groups = append(w.Groups[:i], w.Groups[i+1:]...)
			return
		}
	}
}

func (w *Window) PopupMenu(s backend.Shell, x, y float64) {
	w.Popups = append(w.Popups, Popup{Shell: s.(*MenuShell), X: x, Y: y})
}

// Backend implements backend.Backend in memory.
type Backend struct{}

// New returns a fresh in-memory backend.
func New() *Backend { return &Backend{} }

func (b *Backend) NewShell() backend.Shell           { return &MenuShell{} }
func (b *Backend) NewAccelGroup() backend.AccelGroup { return &AccelTable{} }

func (b *Backend) NewItem(text string, enabled bool, onActivate func()) backend.Handle {
	return &Widget{Kind: KindItem, text: text, enabled: enabled, onActivate: onActivate}
}

func (b *Backend) NewCheckItem(text string, enabled, checked bool, onToggle func(bool)) backend.Handle {
	return &Widget{Kind: KindCheck, text: text, enabled: enabled, checked: checked, onToggle: onToggle}
}

func (b *Backend) NewSubmenuItem(text string, enabled bool, child backend.Shell) backend.Handle {
	return &Widget{Kind: KindSubmenu, text: text, enabled: enabled, Child: child.(*MenuShell)}
}

func (b *Backend) NewPredefinedItem(kind backend.PredefinedKind, text string, meta *backend.AboutMetadata) backend.Handle {
	return &Widget{Kind: KindPredefined, Predefined: kind, About: meta, text: text, enabled: true}
}

func (b *Backend) SetText(h backend.Handle, text string) { h.(*Widget).text = text }
func (b *Backend) Text(h backend.Handle) string          { return h.(*Widget).text }

func (b *Backend) SetEnabled(h backend.Handle, enabled bool) { h.(*Widget).enabled = enabled }
func (b *Backend) Enabled(h backend.Handle) bool             { return h.(*Widget).enabled }

// SetChecked updates the check state and, like GTK, fires the widget's toggle
// notification when the state changes.
func (b *Backend) SetChecked(h backend.Handle, checked bool) {
	w := h.(*Widget)
	if w.checked == checked {
		return
	}
	w.checked = checked
	if w.onToggle != nil {
		w.onToggle(checked)
	}
}

func (b *Backend) Checked(h backend.Handle) bool { return h.(*Widget).checked }
