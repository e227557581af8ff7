/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := SaveFile(path, sampleDefinition()); err != nil {
		t.Fatalf("save: %v", err)
	}
	def, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if def.Version != CurrentVersion {
		t.Fatalf("version = %d, want %d", def.Version, CurrentVersion)
	}
	if len(def.Items) != 2 || def.Items[0].Text != "&File" {
		t.Fatalf("round trip lost content: %+v", def.Items)
	}
	if !def.Items[0].Children[2].Checked {
		t.Fatalf("round trip lost check state")
	}
}

func TestSaveLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	if err := SaveFile(path, sampleDefinition()); err != nil {
		t.Fatalf("save: %v", err)
	}
	def, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(def.Items) != 2 || def.Items[1].Children[0].Kind != KindCopy {
		t.Fatalf("round trip lost content: %+v", def.Items)
	}
}

func TestLoadJSONRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	bad := `{"items":[{"kind":"widget","text":"x"}]}`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("schema should reject unknown kind")
	}
}

func TestLoadJSONRejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	bad := `{"items":[{"kind":"item","label":"x"}]}`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("schema should reject unknown field")
	}
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	doc := "version: 99\nitems: []\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected version error")
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	if err := SaveFile(path, sampleDefinition()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := make(chan *Definition, 4)
	w, err := Watch(path, func(def *Definition) { got <- def })
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	updated := sampleDefinition()
	updated.Items = updated.Items[:1]
	if err := SaveFile(path, updated); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case def := <-got:
		if len(def.Items) != 1 {
			t.Fatalf("reloaded definition has %d items, want 1", len(def.Items))
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no reload observed")
	}
}

func TestWatchIgnoresBrokenRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	if err := SaveFile(path, sampleDefinition()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := make(chan *Definition, 4)
	w, err := Watch(path, func(def *Definition) { got <- def })
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("items: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case def := <-got:
		t.Fatalf("broken file produced a definition: %+v", def)
	case <-time.After(500 * time.Millisecond):
	}
}
