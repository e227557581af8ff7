/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package accel

import (
	"fmt"
	"strings"
)

// Modifiers is a bitset of accelerator modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

// Has reports whether all modifiers in m2 are present in m.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// Accelerator is a portable (modifier set, key) pair. Key is a canonical
// upper-case key name: a single character ("S", "1") or a named key ("F5",
// "Delete", "Enter"). Accelerators are immutable after an item is created;
// no supported toolkit allows live accelerator replacement.
type Accelerator struct {
	Mods Modifiers
	Key  string
}

// Parse builds an Accelerator from a string like "Ctrl+Shift+S" or "Alt+F4".
// Modifier names are case-insensitive; "Cmd" and "Meta" map to Super.
func Parse(s string) (Accelerator, error) {
	parts := strings.Split(s, "+")
	var a Accelerator
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Accelerator{}, fmt.Errorf("accelerator %q: empty segment", s)
		}
		last := i == len(parts)-1
		switch strings.ToLower(p) {
		case "ctrl", "control":
			a.Mods |= ModCtrl
		case "shift":
			a.Mods |= ModShift
		case "alt", "option":
			a.Mods |= ModAlt
		case "super", "cmd", "meta", "win":
			a.Mods |= ModSuper
		default:
			if !last {
				return Accelerator{}, fmt.Errorf("accelerator %q: unknown modifier %q", s, p)
			}
			a.Key = canonicalKey(p)
		}
	}
	if a.Key == "" {
		return Accelerator{}, fmt.Errorf("accelerator %q: missing key", s)
	}
	return a, nil
}

// String renders the canonical textual form, e.g. "Ctrl+Shift+S".
func (a Accelerator) String() string {
	var parts []string
	if a.Mods.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if a.Mods.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if a.Mods.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if a.Mods.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	parts = append(parts, a.Key)
	return strings.Join(parts, "+")
}

func canonicalKey(k string) string {
	if len(k) == 1 {
		return strings.ToUpper(k)
	}
	// named keys keep a Title-case convention: F5, Delete, Enter, Space
	return strings.ToUpper(k[:1]) + strings.ToLower(k[1:])
}
