/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package menu keeps one logical menu tree consistent across any number of
// native projections: per-window menu bars and context menus, each separately
// constructed and destroyed by a toolkit that cannot share a widget between
// two parents. Applications describe the menu once, attach it to windows, and
// mutate it through the logical handles; every mutation fans out to every
// live projection, and windows attached later are projected from current
// state, never a stale snapshot.
//
// The whole package is single-threaded by platform constraint: construction,
// mutation and native callback dispatch all happen on the toolkit's UI
// thread. The one reentrancy hazard — a check item's toggle notification
// re-fired by its own synchronization pass — is handled by the guard in
// CheckItem.
package menu

import (
	"gomenu/internal/backend"
)

// windowMenu is the per-window projection root: a parent-projection id and
// the window's current menu bar (nil between detach and re-attach; the entry
// itself is retained so the surrounding layout survives).
type windowMenu struct {
	id  uint32
	bar backend.Shell
}

// Menu is a menu root: a menu bar when attached to windows, a context menu
// through ContextMenu/ShowContextMenu. A logical entry appears in at most one
// root's top level; that is caller discipline, not enforced by types.
type Menu struct {
	bk       backend.Backend
	children []Entry
	windows  map[backend.Window]*windowMenu
	accels   backend.AccelGroup

	ctxID    uint32
	ctxShell backend.Shell
}

// New creates an empty menu root bound to a backend. All windows this menu is
// attached to must belong to the same backend.
func New(b backend.Backend) *Menu {
	return &Menu{
		bk:      b,
		windows: make(map[backend.Window]*windowMenu),
		ctxID:   nextID(),
	}
}

// Items returns the current top-level entries in order.
func (m *Menu) Items() []Entry {
	out := make([]Entry, len(m.children))
	copy(out, m.children)
	return out
}

// Append adds e at the end of the top level of every attached window and the
// context-menu form.
func (m *Menu) Append(e Entry) {
	_ = m.addEntry(e, opAppend)
}

// AppendItems appends several entries in order.
func (m *Menu) AppendItems(items ...Entry) {
	for _, it := range items {
		m.Append(it)
	}
}

// Prepend adds e at position 0.
func (m *Menu) Prepend(e Entry) {
	_ = m.addEntry(e, opInsert(0))
}

// Insert adds e at position i; i beyond the current length fails with
// ErrOutOfRange and changes nothing.
func (m *Menu) Insert(e Entry, i int) error {
	return m.addEntry(e, opInsert(i))
}

func (m *Menu) addEntry(e Entry, op addOp) error {
	if op.insert && (op.pos < 0 || op.pos > len(m.children)) {
		return ErrOutOfRange
	}
	for _, wm := range m.windows {
		if wm.bar != nil {
			projectEntry(m.bk, wm.bar, wm.id, e, op, m.accels, true)
		}
	}
	if m.ctxShell != nil {
		projectEntry(m.bk, m.ctxShell, m.ctxID, e, op, nil, true)
	}
	if op.insert {
		m.children = append(m.children, nil)
		copy(m.children[op.pos+1:], m.children[op.pos:])
		m.children[op.pos] = e
	} else {
		m.children = append(m.children, e)
	}
	return nil
}

// Remove detaches e from the top level and destroys its projections under
// every attached window and the context-menu form. Membership is checked by
// stable id; a non-member fails with ErrNotAChildOfThisMenu before anything
// is touched.
func (m *Menu) Remove(e Entry) error {
	idx := indexOf(m.children, e.ID())
	if idx < 0 {
		return ErrNotAChildOfThisMenu
	}
	for _, wm := range m.windows {
		if wm.bar != nil {
			removeNative(e, wm.bar, wm.id)
		}
	}
	if m.ctxShell != nil {
		removeNative(e, m.ctxShell, m.ctxID)
	}
	m.children = append(m.children[:idx], m.children[idx+1:]...)
	return nil
}

// RemoveAt removes and returns the entry at index i, or nil when i is out of
// range (the tree is left unchanged).
func (m *Menu) RemoveAt(i int) Entry {
	if i < 0 || i >= len(m.children) {
		return nil
	}
	e := m.children[i]
	_ = m.Remove(e)
	return e
}

// AttachWindow projects the menu as w's menu bar, reflecting the logical
// state as of now — a window attached after mutations sees current state.
// Re-attaching an already-attached window is a no-op; a window attached,
// detached and attached again gets a fresh bar inside its retained layout.
func (m *Menu) AttachWindow(w backend.Window) {
	if m.accels == nil {
		m.accels = m.bk.NewAccelGroup()
	}
	wm, ok := m.windows[w]
	if !ok {
		wm = &windowMenu{id: nextID()}
		m.windows[w] = wm
	}
	if wm.bar != nil {
		return
	}
	wm.bar = w.NewMenuBar()
	projectEntries(m.bk, wm.bar, wm.id, m.children, m.accels, true)
	w.AddAccelGroup(m.accels)
	wm.bar.Show()
}

// DetachWindow cascade-destroys w's projections: every entry's native widgets
// under this window's projection id, then the bar itself. The per-window
// record is retained so a later re-attach recreates only the bar.
func (m *Menu) DetachWindow(w backend.Window) error {
	wm, ok := m.windows[w]
	if !ok || wm.bar == nil {
		return ErrNotInitialized
	}
	for _, e := range m.children {
		removeNative(e, wm.bar, wm.id)
	}
	wm.bar.Destroy()
	w.RemoveAccelGroup(m.accels)
	wm.bar = nil
	return nil
}

// ShowFor makes the menu bar visible in w.
func (m *Menu) ShowFor(w backend.Window) error {
	wm, ok := m.windows[w]
	if !ok || wm.bar == nil {
		return ErrNotInitialized
	}
	wm.bar.Show()
	return nil
}

// HideFor hides the menu bar in w without tearing it down.
func (m *Menu) HideFor(w backend.Window) error {
	wm, ok := m.windows[w]
	if !ok || wm.bar == nil {
		return ErrNotInitialized
	}
	wm.bar.Hide()
	return nil
}

// ContextMenu returns the menu's reusable context-menu form, creating and
// projecting it on first use. The projection is registered: later mutations
// fan out to it like to any window.
func (m *Menu) ContextMenu() backend.Shell {
	if m.ctxShell == nil {
		m.ctxShell = m.bk.NewShell()
		projectEntries(m.bk, m.ctxShell, m.ctxID, m.children, nil, true)
	}
	return m.ctxShell
}

// ShowContextMenu pops up a transient, untracked projection of the menu at
// (x, y) in w; it is discarded after the popup closes.
func (m *Menu) ShowContextMenu(w backend.Window, x, y float64) {
	shell := m.bk.NewShell()
	projectEntries(m.bk, shell, 0, m.children, nil, false)
	w.PopupMenu(shell, x, y)
}
