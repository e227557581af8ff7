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

// Kind discriminates the closed set of logical entry kinds.
type Kind int

const (
	KindSubmenu Kind = iota
	KindNormal
	KindPredefined
	KindCheck
)

// Entry is one logical menu node, independent of any window. The set of
// implementations is closed: *Submenu, *Item, *Predefined and *CheckItem.
// Consumers dispatch with exhaustive type switches.
type Entry interface {
	// ID returns the stable process-unique identifier of this entry.
	ID() uint32
	Kind() Kind
	// Text returns the portable label, read back from the first registered
	// native peer when one exists (native drift wins over the logical cache).
	Text() string
	// SetText updates the logical label and every native projection.
	SetText(text string)
	// Enabled reports the effective enabled state, preferring the first
	// registered native peer.
	Enabled() bool
	// Accelerator returns the accelerator assigned at creation, or nil.
	// Accelerators are immutable for the entry's lifetime.
	Accelerator() *accel.Accelerator

	sealed()
}

// base carries the state common to every entry kind.
type base struct {
	id      uint32
	text    string // portable mnemonic form
	enabled bool
	accel   *accel.Accelerator

	// bk is the backend this entry was first projected with. It stays nil
	// until the entry participates in a projection; mutations fan out only
	// over recorded projections, so a nil bk implies there is nothing to
	// update natively.
	bk backend.Backend
}

func (b *base) ID() uint32                      { return b.id }
func (b *base) Accelerator() *accel.Accelerator { return b.accel }
func (b *base) sealed()                         {}

// leaf is the shared shape of the three non-submenu kinds: common state plus
// a per-parent projection store of single native handles.
type leaf struct {
	base
	store handleStore
}

func (l *leaf) Text() string {
	if h, ok := l.store.first(); ok {
		return accel.FromNative(l.bk.Text(h))
	}
	return l.text
}

func (l *leaf) SetText(text string) {
	l.text = text
	native := accel.ToNative(text)
	l.store.each(func(h backend.Handle) { l.bk.SetText(h, native) })
}

func (l *leaf) Enabled() bool {
	if h, ok := l.store.first(); ok {
		return l.bk.Enabled(h)
	}
	return l.enabled
}

func (l *leaf) SetEnabled(enabled bool) {
	l.enabled = enabled
	l.store.each(func(h backend.Handle) { l.bk.SetEnabled(h, enabled) })
}
