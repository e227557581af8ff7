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

import "gomenu/internal/accel"

// Item is a plain activatable menu entry.
type Item struct {
	leaf
}

// NewItem creates an item. text may contain one '&' mnemonic marker ("&&"
// renders a literal ampersand). a, when non-nil, is registered against the
// accelerator group of every window the item gets projected into.
func NewItem(text string, enabled bool, a *accel.Accelerator) *Item {
	return &Item{leaf: leaf{base: base{id: nextID(), text: text, enabled: enabled, accel: a}}}
}

func (it *Item) Kind() Kind { return KindNormal }
