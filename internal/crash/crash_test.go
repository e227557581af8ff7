/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package crash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gomenu/internal/export"
)

func TestRecoverWritesReport(t *testing.T) {
	var code = -1
	exitFn = func(c int) { code = c }
	defer func() { exitFn = os.Exit }()

	snap := func() *export.Definition {
		return &export.Definition{Items: []export.Node{{Kind: export.KindItem, Text: "&Boom"}}}
	}

	func() {
		defer func() { Recover(snap) }()
		panic("kaputt")
	}()

	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}

	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "gomenu-crash-*.log"))
	if err != nil || len(matches) == 0 {
		t.Fatalf("no crash report found: %v", err)
	}
	newest := matches[len(matches)-1]
	data, err := os.ReadFile(newest)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Panic: kaputt") {
		t.Fatalf("report misses panic value:\n%s", text)
	}
	if !strings.Contains(text, "&Boom") {
		t.Fatalf("report misses menu snapshot:\n%s", text)
	}
	for _, m := range matches {
		os.Remove(m)
	}
}

func TestRecoverNoPanicIsNoOp(t *testing.T) {
	exitFn = func(int) { t.Fatal("exit called without a panic") }
	defer func() { exitFn = os.Exit }()
	func() {
		defer func() { Recover(nil) }()
	}()
}
