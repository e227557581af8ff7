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

// Package fynemenu adapts the backend boundary to Fyne menus. Only available
// with the fyne build tag and cgo.
//
// Fyne has no mnemonic rendering, so underscore markers are stripped from
// labels. Fyne's menu model is also retained-and-refreshed rather than
// widget-per-item: every structural or textual change marks the owning menu
// dirty and refreshes it.
package fynemenu

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"gomenu/internal/accel"
	"gomenu/internal/backend"
)

// item is one native widget: a Fyne menu item plus the bookkeeping Fyne
// itself doesn't carry.
type item struct {
	fi    *fyne.MenuItem
	child *shell // submenu items only

	onActivate func()
	onToggle   func(bool)

	owner *shell // shell currently containing this item
}

// shell wraps one *fyne.Menu. A shell created by NewMenuBar additionally
// owns the window's main menu and maps top-level insertions onto main-menu
// entries.
type shell struct {
	menu *fyne.Menu

	// bar fields, set only for NewMenuBar shells
	win  fyne.Window
	main *fyne.MainMenu

	items []*item
}

func (s *shell) refresh() {
	if s.main != nil {
		s.main.Refresh()
		return
	}
	s.menu.Refresh()
}

func (s *shell) Insert(h backend.Handle, i int) {
	it := h.(*item)
	it.owner = s
	s.items = append(s.items, nil)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = it

	if s.main != nil {
		s.main.Items = append(s.main.Items, nil)
		copy(s.main.Items[i+1:], s.main.Items[i:])
		s.main.Items[i] = it.topLevelMenu()
	} else {
		s.menu.Items = append(s.menu.Items, nil)
		copy(s.menu.Items[i+1:], s.menu.Items[i:])
		s.menu.Items[i] = it.fi
	}
	s.refresh()
}

func (s *shell) Remove(h backend.Handle) {
	it := h.(*item)
	for i, x := range s.items {
		if x == it {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.main != nil {
				s.main.Items = append(s.main.Items[:i], s.main.Items[i+1:]...)
			} else {
				s.menu.Items = append(s.menu.Items[:i], s.menu.Items[i+1:]...)
			}
			break
		}
	}
	it.owner = nil
	s.refresh()
}

func (s *shell) Len() int { return len(s.items) }

func (s *shell) Show() {
	if s.win != nil {
		s.win.SetMainMenu(s.main)
	}
}

func (s *shell) Hide() {
	if s.win != nil {
		s.win.SetMainMenu(nil)
	}
}

func (s *shell) Destroy() {
	if s.win != nil && s.main != nil {
		s.win.SetMainMenu(nil)
	}
	s.items = nil
}

// topLevelMenu renders an item as a main-menu entry. Fyne main menus only
// hold menus, so a leaf at the top level is wrapped into a one-entry menu.
func (it *item) topLevelMenu() *fyne.Menu {
	if it.child != nil {
		it.child.menu.Label = it.fi.Label
		return it.child.menu
	}
	return fyne.NewMenu(it.fi.Label, it.fi)
}

// group satisfies the accelerator-group boundary. Fyne dispatches shortcuts
// from the menu item itself, so registration just decorates the item.
type group struct{}

func (g *group) Register(h backend.Handle, a accel.Accelerator) {
	it := h.(*item)
	it.fi.Shortcut = &desktop.CustomShortcut{
		KeyName:  keyName(a.Key),
		Modifier: keyModifier(a.Mods),
	}
}

func keyName(key string) fyne.KeyName {
	switch key {
	case "Enter":
		return fyne.KeyReturn
	case "Esc", "Escape":
		return fyne.KeyEscape
	case "Backspace":
		return fyne.KeyBackspace
	case "Delete":
		return fyne.KeyDelete
	case "Space":
		return fyne.KeySpace
	case "Tab":
		return fyne.KeyTab
	default:
		return fyne.KeyName(key)
	}
}

func keyModifier(m accel.Modifiers) fyne.KeyModifier {
	var out fyne.KeyModifier
	if m.Has(accel.ModCtrl) {
		out |= fyne.KeyModifierControl
	}
	if m.Has(accel.ModShift) {
		out |= fyne.KeyModifierShift
	}
	if m.Has(accel.ModAlt) {
		out |= fyne.KeyModifierAlt
	}
	if m.Has(accel.ModSuper) {
		out |= fyne.KeyModifierSuper
	}
	return out
}

// Window wraps a fyne.Window for menu attachment.
type Window struct {
	win fyne.Window
}

// Wrap makes a fyne window attachable.
func Wrap(w fyne.Window) *Window { return &Window{win: w} }

func (w *Window) NewMenuBar() backend.Shell {
	main := fyne.NewMainMenu()
	w.win.SetMainMenu(main)
	return &shell{win: w.win, main: main}
}

// AddAccelGroup and RemoveAccelGroup are no-ops: Fyne routes shortcuts
// through the main menu, not a separate per-window table.
func (w *Window) AddAccelGroup(backend.AccelGroup)    {}
func (w *Window) RemoveAccelGroup(backend.AccelGroup) {}

func (w *Window) PopupMenu(s backend.Shell, x, y float64) {
	sh := s.(*shell)
	widget.ShowPopUpMenuAtPosition(sh.menu, w.win.Canvas(), fyne.NewPos(float32(x), float32(y)))
}

// Backend implements the backend boundary on Fyne.
type Backend struct{}

// New returns the Fyne backend.
func New() *Backend { return &Backend{} }

func (b *Backend) NewShell() backend.Shell           { return &shell{menu: fyne.NewMenu("")} }
func (b *Backend) NewAccelGroup() backend.AccelGroup { return &group{} }

func label(text string) string { return accel.Strip(accel.FromNative(text)) }

func (b *Backend) NewItem(text string, enabled bool, onActivate func()) backend.Handle {
	it := &item{onActivate: onActivate}
	it.fi = fyne.NewMenuItem(label(text), func() {
		if it.onActivate != nil {
			it.onActivate()
		}
	})
	it.fi.Disabled = !enabled
	return it
}

func (b *Backend) NewCheckItem(text string, enabled, checked bool, onToggle func(bool)) backend.Handle {
	it := &item{onToggle: onToggle}
	it.fi = fyne.NewMenuItem(label(text), func() {
		it.fi.Checked = !it.fi.Checked
		it.refreshOwner()
		if it.onToggle != nil {
			it.onToggle(it.fi.Checked)
		}
	})
	it.fi.Checked = checked
	it.fi.Disabled = !enabled
	return it
}

func (b *Backend) NewSubmenuItem(text string, enabled bool, child backend.Shell) backend.Handle {
	cs := child.(*shell)
	it := &item{child: cs}
	it.fi = fyne.NewMenuItem(label(text), nil)
	it.fi.ChildMenu = cs.menu
	it.fi.Disabled = !enabled
	cs.menu.Label = it.fi.Label
	return it
}

func (b *Backend) NewPredefinedItem(kind backend.PredefinedKind, text string, meta *backend.AboutMetadata) backend.Handle {
	if kind == backend.PredefinedSeparator {
		return &item{fi: fyne.NewMenuItemSeparator()}
	}
	it := &item{}
	it.fi = fyne.NewMenuItem(label(text), func() { predefinedAction(kind, meta) })
	return it
}

func (it *item) refreshOwner() {
	if it.owner != nil {
		it.owner.refresh()
	}
}

func (b *Backend) SetText(h backend.Handle, text string) {
	it := h.(*item)
	it.fi.Label = label(text)
	if it.child != nil {
		it.child.menu.Label = it.fi.Label
	}
	it.refreshOwner()
}

func (b *Backend) Text(h backend.Handle) string { return h.(*item).fi.Label }

func (b *Backend) SetEnabled(h backend.Handle, enabled bool) {
	it := h.(*item)
	it.fi.Disabled = !enabled
	it.refreshOwner()
}

func (b *Backend) Enabled(h backend.Handle) bool { return !h.(*item).fi.Disabled }

// SetChecked mirrors toolkit semantics: a state change fires the item's
// toggle notification.
func (b *Backend) SetChecked(h backend.Handle, checked bool) {
	it := h.(*item)
	if it.fi.Checked == checked {
		return
	}
	it.fi.Checked = checked
	it.refreshOwner()
	if it.onToggle != nil {
		it.onToggle(checked)
	}
}

func (b *Backend) Checked(h backend.Handle) bool { return h.(*item).fi.Checked }
