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

// Submenu is a logical entry holding an ordered child sequence. The sequence
// is the single source of truth for native ordering: every projection
// reflects it after any mutation, including projections created later.
type Submenu struct {
	base
	children []Entry
	store    subStore

	// lazily-created context menu form, with its own parent-projection id
	ctxID    uint32
	ctxShell backend.Shell
}

// NewSubmenu creates an empty submenu.
func NewSubmenu(text string, enabled bool) *Submenu {
	return &Submenu{
		base:  base{id: nextID(), text: text, enabled: enabled},
		ctxID: nextID(),
	}
}

// NewSubmenuWithItems creates a submenu pre-filled with items.
func NewSubmenuWithItems(text string, enabled bool, items ...Entry) *Submenu {
	s := NewSubmenu(text, enabled)
	for _, it := range items {
		s.Append(it)
	}
	return s
}

func (s *Submenu) Kind() Kind { return KindSubmenu }

// Items returns the current logical children in order.
func (s *Submenu) Items() []Entry {
	out := make([]Entry, len(s.children))
	copy(out, s.children)
	return out
}

func (s *Submenu) Text() string {
	if sp, ok := s.store.first(); ok {
		return accel.FromNative(s.bk.Text(sp.item))
	}
	return s.text
}

func (s *Submenu) SetText(text string) {
	s.text = text
	native := accel.ToNative(text)
	s.store.each(func(sp subProjection) { s.bk.SetText(sp.item, native) })
}

func (s *Submenu) Enabled() bool {
	if sp, ok := s.store.first(); ok {
		return s.bk.Enabled(sp.item)
	}
	return s.enabled
}

func (s *Submenu) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.store.each(func(sp subProjection) { s.bk.SetEnabled(sp.item, enabled) })
}

// Append adds e at the end of the child sequence and projects it into every
// live native instantiation of this submenu.
func (s *Submenu) Append(e Entry) {
	// append can't be out of range
	_ = s.addEntry(e, opAppend)
}

// AppendItems appends several entries in order.
func (s *Submenu) AppendItems(items ...Entry) {
	for _, it := range items {
		s.Append(it)
	}
}

// Prepend adds e at position 0.
func (s *Submenu) Prepend(e Entry) {
	_ = s.addEntry(e, opInsert(0))
}

// Insert adds e at position i; i beyond the current length fails with
// ErrOutOfRange and changes nothing, logically or natively.
func (s *Submenu) Insert(e Entry, i int) error {
	return s.addEntry(e, opInsert(i))
}

func (s *Submenu) addEntry(e Entry, op addOp) error {
	if op.insert && (op.pos < 0 || op.pos > len(s.children)) {
		return ErrOutOfRange
	}
	s.store.each(func(sp subProjection) {
		projectEntry(s.bk, sp.shell, sp.childID, e, op, sp.accels, true)
	})
	if s.ctxShell != nil {
		projectEntry(s.bk, s.ctxShell, s.ctxID, e, op, nil, true)
	}
	if op.insert {
		s.children = append(s.children, nil)
		copy(s.children[op.pos+1:], s.children[op.pos:])
		s.children[op.pos] = e
	} else {
		s.children = append(s.children, e)
	}
	return nil
}

// Remove detaches e from the child sequence and destroys all of its native
// projections under this submenu. Membership is checked by stable id, not
// pointer identity; a non-member fails with ErrNotAChildOfThisMenu before
// anything is touched.
func (s *Submenu) Remove(e Entry) error {
	idx := indexOf(s.children, e.ID())
	if idx < 0 {
		return ErrNotAChildOfThisMenu
	}
	s.store.each(func(sp subProjection) {
		removeNative(e, sp.shell, sp.childID)
	})
	if s.ctxShell != nil {
		removeNative(e, s.ctxShell, s.ctxID)
	}
	s.children = append(s.children[:idx], s.children[idx+1:]...)
	return nil
}

// RemoveAt removes and returns the child at index i, or nil when i is out of
// range (the tree is left unchanged).
func (s *Submenu) RemoveAt(i int) Entry {
	if i < 0 || i >= len(s.children) {
		return nil
	}
	e := s.children[i]
	_ = s.Remove(e)
	return e
}

// ContextMenu returns this submenu's reusable context-menu form, creating and
// projecting it on first use. The projection is registered, so later
// mutations fan out to it.
func (s *Submenu) ContextMenu(b backend.Backend) backend.Shell {
	if s.bk == nil {
		s.bk = b
	}
	if s.ctxShell == nil {
		s.ctxShell = b.NewShell()
		projectEntries(b, s.ctxShell, s.ctxID, s.children, nil, true)
	}
	return s.ctxShell
}

// ShowContextMenu pops up a transient, untracked projection of this submenu's
// children at (x, y) in w. The projection is discarded when the popup closes
// and never receives mutation fan-out.
func (s *Submenu) ShowContextMenu(b backend.Backend, w backend.Window, x, y float64) {
	shell := b.NewShell()
	projectEntries(b, shell, 0, s.children, nil, false)
	w.PopupMenu(shell, x, y)
}

func indexOf(entries []Entry, id uint32) int {
	for i, e := range entries {
		if e.ID() == id {
			return i
		}
	}
	return -1
}
