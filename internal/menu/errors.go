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

import "errors"

var (
	// ErrNotAChildOfThisMenu is returned by Remove when the entry is not in
	// the target container's logical child sequence.
	ErrNotAChildOfThisMenu = errors.New("not a child of this menu")

	// ErrNotInitialized is returned by operations that need an existing
	// native projection (show/hide/detach) before the window was attached.
	ErrNotInitialized = errors.New("menu was not initialized for this window")

	// ErrOutOfRange is returned by Insert for a position beyond the current
	// child count. Positions are never clamped.
	ErrOutOfRange = errors.New("insert position out of range")
)
