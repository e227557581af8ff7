//go:build !tray

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package traymenu

import (
	"fmt"

	"gomenu/internal/export"
	"gomenu/internal/menu"
)

// Run reports that the tray backend is not compiled in. The systray package
// drags in cgo on Linux, so headless builds leave it out.
func Run(string, *export.Definition, func(menu.Event)) error {
	return fmt.Errorf("tray backend not built in this binary. Rebuild with: go run -tags tray ./cmd/menudemo run")
}
