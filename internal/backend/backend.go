/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package backend defines the capability boundary between the toolkit-neutral
// menu engine and a concrete native menu toolkit. One adapter exists per
// toolkit (see the memory, fynemenu and traymenu subpackages).
//
// All text crossing this boundary is in the native underscore-mnemonic form
// (see internal/accel); adapters for toolkits without access-key support are
// expected to strip markers themselves.
//
// Everything here is single-threaded: adapters must be driven from the one
// thread the host toolkit requires for UI work, and callbacks (activation,
// toggle) are dispatched synchronously on that same thread.
package backend

import "gomenu/internal/accel"

// Handle is an opaque reference to one native widget. A handle belongs to
// exactly one (parent projection, logical entry) pair and is never shared
// between parents.
type Handle any

// Shell is a native menu container: a window's menu bar, a nested submenu, or
// a popup context menu.
type Shell interface {
	// Insert places h at index i among the shell's current children; i equal
	// to Len appends. The engine validates bounds before calling.
	Insert(h Handle, i int)
	// Remove detaches h from the shell.
	Remove(h Handle)
	// Len returns the number of children currently in the shell.
	Len() int
	// Show / Hide control the visibility of the whole container.
	Show()
	Hide()
	// Destroy releases the native container. Children must have been removed
	// beforehand; toolkits require explicit teardown ordering.
	Destroy()
}

// AccelGroup is a native accelerator table scoped to a window.
type AccelGroup interface {
	// Register binds a to the activation of h for every window this group is
	// attached to.
	Register(h Handle, a accel.Accelerator)
}

// Window is the engine's view of one host window.
type Window interface {
	// NewMenuBar creates a fresh menu bar container inside the window's
	// retained surrounding layout. Called on first attach and again after a
	// detach; the adapter keeps whatever outer packing it needs across calls.
	NewMenuBar() Shell
	// AddAccelGroup / RemoveAccelGroup attach a window-scoped accelerator
	// table.
	AddAccelGroup(g AccelGroup)
	RemoveAccelGroup(g AccelGroup)
	// PopupMenu displays s as a context menu at window coordinates (x, y).
	// The call is synchronous from the caller's perspective.
	PopupMenu(s Shell, x, y float64)
}

// PredefinedKind identifies the platform-conventional items a backend may
// implement natively.
type PredefinedKind int

const (
	PredefinedSeparator PredefinedKind = iota
	PredefinedCopy
	PredefinedCut
	PredefinedPaste
	PredefinedSelectAll
	PredefinedQuit
	PredefinedCloseWindow
	PredefinedMinimize
	PredefinedAbout
)

// AboutMetadata feeds the predefined About item.
type AboutMetadata struct {
	Name         string
	Version      string
	Authors      []string
	Comments     string
	Copyright    string
	License      string
	Website      string
	WebsiteLabel string
}

// Backend constructs and mutates native widgets. The engine owns all
// bookkeeping; adapters never keep back-pointers from widgets into the
// logical tree.
type Backend interface {
	// NewShell creates an empty plain menu container, used for submenus and
	// context menus.
	NewShell() Shell
	// NewAccelGroup creates an empty accelerator table.
	NewAccelGroup() AccelGroup

	// NewItem creates a plain activatable item. onActivate fires on every
	// user activation of this specific widget.
	NewItem(text string, enabled bool, onActivate func()) Handle
	// NewCheckItem creates a checkable item. onToggle fires on every toggle
	// notification for this widget, including toggles caused by SetChecked —
	// exactly like the native toolkits it stands in for.
	NewCheckItem(text string, enabled, checked bool, onToggle func(checked bool)) Handle
	// NewSubmenuItem creates an item that opens child when hovered/activated.
	NewSubmenuItem(text string, enabled bool, child Shell) Handle
	// NewPredefinedItem creates a platform-conventional item. meta is only
	// consulted for PredefinedAbout.
	NewPredefinedItem(kind PredefinedKind, text string, meta *AboutMetadata) Handle

	SetText(h Handle, text string)
	Text(h Handle) string
	SetEnabled(h Handle, enabled bool)
	Enabled(h Handle) bool
	SetChecked(h Handle, checked bool)
	Checked(h Handle) bool
}
