/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestInitJSONFile verifies that Init with a file handler writes JSON logs
// and that static and contextual attributes are present.
func TestInitJSONFile(t *testing.T) {
	// Use a file in the system temp dir to avoid Windows deleting a still-open handle
	fpath := filepath.Join(os.TempDir(), fmt.Sprintf("gmenu_log_%d.json", time.Now().UnixNano()))

	Init(Options{Level: "debug", Format: "json", File: fpath})

	l := WithComponent("testcomp")
	l.Info("hello world", slog.String("k", "v"))

	// Give a brief moment for the filesystem to settle (Windows)
	time.Sleep(50 * time.Millisecond)

	b, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("log file is empty")
	}

	// Parse last non-empty line as JSON and assert fields
	scanner := bufio.NewScanner(strings.NewReader(string(b)))
	var last string
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			last = s
		}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("last log line is not JSON: %v: %q", err, last)
	}
	if m["msg"] != "hello world" {
		t.Fatalf("unexpected msg: %v", m["msg"])
	}
	if m["component"] != "testcomp" {
		t.Fatalf("component attribute missing, got: %v", m["component"])
	}
	if m["app"] != "gomenu" {
		t.Fatalf("app attribute missing, got: %v", m["app"])
	}
	if m["k"] != "v" {
		t.Fatalf("record attribute missing, got: %v", m["k"])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in).Level(); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsoleHandlerLine(t *testing.T) {
	var sb strings.Builder
	h := &consoleHandler{level: slog.LevelInfo, w: &sb}
	l := slog.New(h).With(slog.String("component", "core"))
	l.Info("attached", slog.Int("windows", 2))

	line := sb.String()
	if !strings.Contains(line, "INF attached") {
		t.Fatalf("missing level/message in %q", line)
	}
	if !strings.Contains(line, "component=core") || !strings.Contains(line, "windows=2") {
		t.Fatalf("missing attributes in %q", line)
	}
	// debug below threshold must not be written
	l.Debug("noise")
	if strings.Contains(sb.String(), "noise") {
		t.Fatalf("debug record leaked through INFO handler")
	}
}
