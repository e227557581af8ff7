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

// addOp is the placement mode for one native insert: append to the current
// end, or insert at a fixed index. The engine validates indices against the
// logical child sequence before projecting, so by the time an op reaches a
// shell it is always in range.
type addOp struct {
	insert bool
	pos    int
}

var opAppend = addOp{}

func opInsert(pos int) addOp { return addOp{insert: true, pos: pos} }

func insertInto(shell backend.Shell, h backend.Handle, op addOp) {
	pos := shell.Len()
	if op.insert {
		pos = op.pos
	}
	shell.Insert(h, pos)
}

// projectEntry materializes one logical entry as a native widget (or widget
// subtree, for submenus) inside shell. parentID keys the projection in the
// entry's store; register=false creates a transient, untracked projection
// for one-shot popups that must not receive later mutation fan-out.
func projectEntry(b backend.Backend, shell backend.Shell, parentID uint32, e Entry, op addOp, accels backend.AccelGroup, register bool) {
	switch e := e.(type) {
	case *Submenu:
		projectSubmenu(b, shell, parentID, e, op, accels, register)
	case *Item:
		projectItem(b, shell, parentID, e, op, accels, register)
	case *Predefined:
		projectPredefined(b, shell, parentID, e, op, accels, register)
	case *CheckItem:
		projectCheckItem(b, shell, parentID, e, op, accels, register)
	}
}

// projectEntries appends each entry of a logical sequence into shell in order.
func projectEntries(b backend.Backend, shell backend.Shell, parentID uint32, entries []Entry, accels backend.AccelGroup, register bool) {
	for _, e := range entries {
		projectEntry(b, shell, parentID, e, opAppend, accels, register)
	}
}

func projectSubmenu(b backend.Backend, shell backend.Shell, parentID uint32, s *Submenu, op addOp, accels backend.AccelGroup, register bool) {
	if s.bk == nil {
		s.bk = b
	}
	child := b.NewShell()
	h := b.NewSubmenuItem(accel.ToNative(s.text), s.enabled, child)
	insertInto(shell, h, op)

	// children of this instantiation get their own parent-projection id
	childID := nextID()
	projectEntries(b, child, childID, s.children, accels, register)

	if register {
		s.store.add(parentID, subProjection{item: h, shell: child, accels: accels, childID: childID})
	}
}

func projectItem(b backend.Backend, shell backend.Shell, parentID uint32, it *Item, op addOp, accels backend.AccelGroup, register bool) {
	if it.bk == nil {
		it.bk = b
	}
	id := it.id
	h := b.NewItem(accel.ToNative(it.text), it.enabled, func() {
		publish(Event{ID: id})
	})
	insertInto(shell, h, op)
	if it.accel != nil && accels != nil {
		accels.Register(h, *it.accel)
	}
	if register {
		it.store.add(parentID, h)
	}
}

func projectPredefined(b backend.Backend, shell backend.Shell, parentID uint32, p *Predefined, op addOp, accels backend.AccelGroup, register bool) {
	if p.bk == nil {
		p.bk = b
	}
	h := b.NewPredefinedItem(p.kind, accel.ToNative(p.text), p.meta)
	insertInto(shell, h, op)
	if p.accel != nil && accels != nil && p.kind != backend.PredefinedSeparator {
		accels.Register(h, *p.accel)
	}
	if register {
		p.store.add(parentID, h)
	}
}

func projectCheckItem(b backend.Backend, shell backend.Shell, parentID uint32, c *CheckItem, op addOp, accels backend.AccelGroup, register bool) {
	if c.bk == nil {
		c.bk = b
	}
	h := b.NewCheckItem(accel.ToNative(c.text), c.enabled, c.checked, c.toggleFunc())
	insertInto(shell, h, op)
	if c.accel != nil && accels != nil {
		accels.Register(h, *c.accel)
	}
	if register {
		c.store.add(parentID, h)
	}
}

// removeNative tears down every native projection of e recorded under
// parentID inside shell. Submenus cascade depth-first: descendant projections
// keyed under the instantiation's child id go first, then the nested
// container, then the submenu's own item — toolkits require children to be
// released before their containers.
func removeNative(e Entry, shell backend.Shell, parentID uint32) {
	switch e := e.(type) {
	case *Submenu:
		for _, sp := range e.store.take(parentID) {
			for _, child := range e.children {
				removeNative(child, sp.shell, sp.childID)
			}
			sp.shell.Destroy()
			shell.Remove(sp.item)
		}
	case *Item:
		for _, h := range e.store.take(parentID) {
			shell.Remove(h)
		}
	case *Predefined:
		for _, h := range e.store.take(parentID) {
			shell.Remove(h)
		}
	case *CheckItem:
		for _, h := range e.store.take(parentID) {
			shell.Remove(h)
		}
	}
}
