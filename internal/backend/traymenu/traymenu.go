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

// Package traymenu adapts the backend boundary to a system tray menu via
// getlantern/systray. Only available with the tray build tag; the systray
// package needs cgo on Linux.
//
// The tray imposes real limitations the adapter papers over:
//   - items cannot be created detached, so handles are realized lazily when
//     they first land in a live shell;
//   - the tray cannot splice, so mid-sequence inserts append instead (with a
//     warning);
//   - the tray cannot remove, so removed items are hidden;
//   - there is exactly one "window", the tray itself.
package traymenu

import (
	"sync"

	"github.com/getlantern/systray"

	"gomenu/internal/accel"
	"gomenu/internal/backend"
	"gomenu/internal/log"
)

type itemKind int

const (
	kindItem itemKind = iota
	kindCheck
	kindSubmenu
	kindPredefined
)

// trayItem is one handle. mi stays nil until the item is realized inside a
// live shell.
type trayItem struct {
	kind    itemKind
	text    string
	tooltip string
	enabled bool
	checked bool

	onActivate func()
	onToggle   func(bool)

	child *trayShell // kindSubmenu only
	mi    *systray.MenuItem
}

// trayShell is a container. The root shell is the tray menu itself; nested
// shells live under a realized submenu item.
type trayShell struct {
	root  bool
	owner *trayItem // realized parent, nil until the owning item is live
	items []*trayItem
}

func (s *trayShell) live() bool { return s.root || (s.owner != nil && s.owner.mi != nil) }

func (s *trayShell) Insert(h backend.Handle, i int) {
	it := h.(*trayItem)
	if i != len(s.items) {
		log.WithComponent("traymenu").Warn("tray menus cannot splice; inserting at the end", "wanted", i)
	}
	s.items = append(s.items, it)
	if s.live() {
		realize(it, s)
	}
}

func (s *trayShell) Remove(h backend.Handle) {
	it := h.(*trayItem)
	for i, x := range s.items {
		if x == it {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if it.mi != nil {
		it.mi.Hide()
	}
}

func (s *trayShell) Len() int { return len(s.items) }

func (s *trayShell) Show() {
	for _, it := range s.items {
		if it.mi != nil {
			it.mi.Show()
		}
	}
}

func (s *trayShell) Hide() {
	for _, it := range s.items {
		if it.mi != nil {
			it.mi.Hide()
		}
	}
}

func (s *trayShell) Destroy() { s.Hide(); s.items = nil }

// realize materializes it inside shell, recursively for submenu subtrees.
func realize(it *trayItem, shell *trayShell) {
	if it.mi != nil {
		return
	}
	title := label(it.text)
	switch {
	case shell.root && it.kind == kindCheck:
		it.mi = systray.AddMenuItemCheckbox(title, it.tooltip, it.checked)
	case shell.root:
		it.mi = systray.AddMenuItem(title, it.tooltip)
	case it.kind == kindCheck:
		it.mi = shell.owner.mi.AddSubMenuItemCheckbox(title, it.tooltip, it.checked)
	default:
		it.mi = shell.owner.mi.AddSubMenuItem(title, it.tooltip)
	}
	if !it.enabled {
		it.mi.Disable()
	}
	startDispatcher()
	go it.clickPump()

	if it.child != nil {
		it.child.owner = it
		for _, c := range it.child.items {
			realize(c, it.child)
		}
	}
}

// clicks funnels every item's ClickedCh into one dispatch goroutine. The
// engine is not safe for concurrent mutation, so simultaneous tray clicks
// must not run their callbacks in parallel.
var (
	clicks       = make(chan *trayItem, 16)
	dispatchOnce sync.Once
)

func startDispatcher() {
	dispatchOnce.Do(func() {
		go func() {
			for it := range clicks {
				it.clicked()
			}
		}()
	})
}

// clickPump forwards systray's per-item click channel to the dispatcher.
func (it *trayItem) clickPump() {
	for range it.mi.ClickedCh {
		clicks <- it
	}
}

// clicked runs on the dispatch goroutine. Check items flip their native
// state before notifying, matching toolkit behavior.
func (it *trayItem) clicked() {
	switch it.kind {
	case kindCheck:
		it.checked = !it.checked
		if it.checked {
			it.mi.Check()
		} else {
			it.mi.Uncheck()
		}
		if it.onToggle != nil {
			it.onToggle(it.checked)
		}
	default:
		if it.onActivate != nil {
			it.onActivate()
		}
	}
}

// group records accelerators as tooltips; the tray has no key dispatch.
type group struct{}

func (g *group) Register(h backend.Handle, a accel.Accelerator) {
	it := h.(*trayItem)
	it.tooltip = a.String()
	if it.mi != nil {
		it.mi.SetTooltip(it.tooltip)
	}
}

// Tray is the single attachable "window".
type Tray struct{}

func (t *Tray) NewMenuBar() backend.Shell           { return &trayShell{root: true} }
func (t *Tray) AddAccelGroup(backend.AccelGroup)    {}
func (t *Tray) RemoveAccelGroup(backend.AccelGroup) {}

func (t *Tray) PopupMenu(backend.Shell, float64, float64) {
	log.WithComponent("traymenu").Warn("tray backend cannot pop up context menus")
}

// Backend implements the backend boundary on the system tray.
type Backend struct{}

// New returns the tray backend. The caller must be inside systray.Run's
// onReady before attaching anything.
func New() *Backend { return &Backend{} }

func (b *Backend) NewShell() backend.Shell           { return &trayShell{} }
func (b *Backend) NewAccelGroup() backend.AccelGroup { return &group{} }

func label(text string) string { return accel.Strip(accel.FromNative(text)) }

func (b *Backend) NewItem(text string, enabled bool, onActivate func()) backend.Handle {
	return &trayItem{kind: kindItem, text: text, enabled: enabled, onActivate: onActivate}
}

func (b *Backend) NewCheckItem(text string, enabled, checked bool, onToggle func(bool)) backend.Handle {
	return &trayItem{kind: kindCheck, text: text, enabled: enabled, checked: checked, onToggle: onToggle}
}

func (b *Backend) NewSubmenuItem(text string, enabled bool, child backend.Shell) backend.Handle {
	return &trayItem{kind: kindSubmenu, text: text, enabled: enabled, child: child.(*trayShell)}
}

func (b *Backend) NewPredefinedItem(kind backend.PredefinedKind, text string, meta *backend.AboutMetadata) backend.Handle {
	it := &trayItem{kind: kindPredefined, text: text, enabled: true}
	if kind == backend.PredefinedQuit {
		it.onActivate = systray.Quit
	}
	return it
}

func (b *Backend) SetText(h backend.Handle, text string) {
	it := h.(*trayItem)
	it.text = text
	if it.mi != nil {
		it.mi.SetTitle(label(text))
	}
}

func (b *Backend) Text(h backend.Handle) string { return h.(*trayItem).text }

func (b *Backend) SetEnabled(h backend.Handle, enabled bool) {
	it := h.(*trayItem)
	it.enabled = enabled
	if it.mi == nil {
		return
	}
	if enabled {
		it.mi.Enable()
	} else {
		it.mi.Disable()
	}
}

func (b *Backend) Enabled(h backend.Handle) bool { return h.(*trayItem).enabled }

// SetChecked mirrors toolkit semantics: a state change fires the item's
// toggle notification.
func (b *Backend) SetChecked(h backend.Handle, checked bool) {
	it := h.(*trayItem)
	if it.checked == checked {
		return
	}
	it.checked = checked
	if it.mi != nil {
		if checked {
			it.mi.Check()
		} else {
			it.mi.Uncheck()
		}
	}
	if it.onToggle != nil {
		it.onToggle(checked)
	}
}

func (b *Backend) Checked(h backend.Handle) bool { return h.(*trayItem).checked }
