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
	"sync/atomic"

	"gomenu/internal/accel"
	"gomenu/internal/backend"
)

// CheckItem is a checkable menu entry. One logical check item may be
// projected into many native widgets across many windows; toggling any one
// of them synchronizes all peers and reports a single event.
type CheckItem struct {
	leaf
	checked bool

	// syncing guards the peer-update pass. Setting a peer's native state
	// re-fires that peer's own toggle notification; without the guard the
	// handler would re-enter itself until the stack blows.
	syncing atomic.Bool
}

// NewCheckItem creates a check item with the given initial state.
func NewCheckItem(text string, enabled, checked bool, a *accel.Accelerator) *CheckItem {
	return &CheckItem{
		leaf:    leaf{base: base{id: nextID(), text: text, enabled: enabled, accel: a}},
		checked: checked,
	}
}

func (c *CheckItem) Kind() Kind { return KindCheck }

// Checked reports the effective check state, preferring the first registered
// native peer; with no live projection the logical cache is authoritative.
func (c *CheckItem) Checked() bool {
	if h, ok := c.store.first(); ok {
		return c.bk.Checked(h)
	}
	return c.checked
}

// SetChecked programmatically sets the state on the logical entry and every
// native peer. No event is published: feedback is only reported for toggles
// that originate in a native widget. The guard still brackets the peer loop
// so the synthetic per-peer notifications are swallowed.
func (c *CheckItem) SetChecked(checked bool) {
	c.checked = checked
	c.syncing.Store(true)
	c.store.each(func(h backend.Handle) { c.bk.SetChecked(h, checked) })
	c.syncing.Store(false)
}

// toggleFunc builds the native toggle-notification handler for one projected
// widget. State machine: Idle -> Syncing via compare-and-set; a failed swap
// identifies the notification as synthetic (caused by the propagation pass
// itself) and it is dropped without publishing or recursing.
func (c *CheckItem) toggleFunc() func(checked bool) {
	return func(checked bool) {
		if !c.syncing.CompareAndSwap(false, true) {
			return
		}
		c.checked = checked
		c.store.each(func(h backend.Handle) { c.bk.SetChecked(h, checked) })
		c.syncing.Store(false)
		publish(Event{ID: c.id})
	}
}
