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
	"testing"

	"gomenu/internal/backend/memory"
	"gomenu/internal/menu"
)

func sampleDefinition() *Definition {
	return &Definition{
		Items: []Node{
			{
				Kind: KindSubmenu,
				Text: "&File",
				Children: []Node{
					{Kind: KindItem, Text: "&Open", Accel: "Ctrl+O"},
					{Kind: KindSeparator},
					{Kind: KindCheck, Text: "Auto&save", Checked: true},
					{Kind: KindQuit},
				},
			},
			{
				Kind: KindSubmenu,
				Text: "&Edit",
				Children: []Node{
					{Kind: KindCopy},
					{Kind: KindPaste},
					{Kind: KindItem, Text: "Prefs", Disabled: true},
				},
			},
		},
	}
}

func TestBuildSampleTree(t *testing.T) {
	entries, err := Build(sampleDefinition().Items)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("%d top-level entries, want 2", len(entries))
	}

	file, ok := entries[0].(*menu.Submenu)
	if !ok {
		t.Fatalf("first entry is %T, want *menu.Submenu", entries[0])
	}
	kids := file.Items()
	if len(kids) != 4 {
		t.Fatalf("File has %d children, want 4", len(kids))
	}
	open := kids[0].(*menu.Item)
	if open.Text() != "&Open" {
		t.Fatalf("open text = %q", open.Text())
	}
	if a := open.Accelerator(); a == nil || a.String() != "Ctrl+O" {
		t.Fatalf("open accel = %v", a)
	}
	if check := kids[2].(*menu.CheckItem); !check.Checked() {
		t.Fatalf("checked flag lost in build")
	}

	edit := entries[1].(*menu.Submenu)
	if prefs := edit.Items()[2]; prefs.Enabled() {
		t.Fatalf("disabled flag lost in build")
	}
}

func TestBuildRejectsUnknownKind(t *testing.T) {
	_, err := Build([]Node{{Kind: "widget"}})
	if err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestBuildRejectsBadAccel(t *testing.T) {
	_, err := Build([]Node{{Kind: KindItem, Text: "x", Accel: "Hyper+Q"}})
	if err == nil {
		t.Fatalf("expected error for unparseable accelerator")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	entries, err := Build(sampleDefinition().Items)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b := memory.New()
	m := menu.New(b)
	m.AppendItems(entries...)

	got := Snapshot(m.Items())
	want := sampleDefinition().Items
	if len(got) != len(want) {
		t.Fatalf("snapshot has %d items, want %d", len(got), len(want))
	}
	if got[0].Text != "&File" || got[0].Kind != KindSubmenu {
		t.Fatalf("top node = %+v", got[0])
	}
	fileKids := got[0].Children
	if fileKids[0].Accel != "Ctrl+O" {
		t.Fatalf("accelerator not snapshotted: %+v", fileKids[0])
	}
	if fileKids[1].Kind != KindSeparator {
		t.Fatalf("separator not snapshotted: %+v", fileKids[1])
	}
	if !fileKids[2].Checked {
		t.Fatalf("check state not snapshotted")
	}
	if fileKids[3].Kind != KindQuit {
		t.Fatalf("predefined kind lost: %+v", fileKids[3])
	}
	if !got[1].Children[2].Disabled {
		t.Fatalf("disabled state not snapshotted")
	}
}

func TestSnapshotKeepsAboutMetadata(t *testing.T) {
	def := &Definition{Items: []Node{{
		Kind: KindAbout,
		About: &AboutNode{
			Name:         "gomenu",
			Version:      "1.2.3",
			Authors:      []string{"a", "b"},
			Website:      "https://example.org",
			WebsiteLabel: "example",
		},
	}}}
	entries, err := Build(def.Items)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	m := menu.New(memory.New())
	m.AppendItems(entries...)

	got := Snapshot(m.Items())
	if len(got) != 1 || got[0].Kind != KindAbout {
		t.Fatalf("snapshot = %+v", got)
	}
	about := got[0].About
	if about == nil {
		t.Fatalf("about metadata lost in snapshot")
	}
	if about.Name != "gomenu" || about.Version != "1.2.3" || about.WebsiteLabel != "example" {
		t.Fatalf("about = %+v", about)
	}
	if len(about.Authors) != 2 || about.Authors[1] != "b" {
		t.Fatalf("authors = %v", about.Authors)
	}
}

func TestApplySwapsLiveTree(t *testing.T) {
	b := memory.New()
	m := menu.New(b)
	m.Append(menu.NewSubmenuWithItems("Old", true, menu.NewItem("gone", true, nil)))

	w := memory.NewWindow("w")
	m.AttachWindow(w)

	if err := Apply(m, sampleDefinition()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	items := w.Bar.Items()
	if len(items) != 2 {
		t.Fatalf("menubar has %d items after apply, want 2", len(items))
	}
	if items[0].Text() != "_File" || items[1].Text() != "_Edit" {
		t.Fatalf("applied labels = %q, %q", items[0].Text(), items[1].Text())
	}
	if len(items[0].Child.Items()) != 4 {
		t.Fatalf("applied File has %d children", len(items[0].Child.Items()))
	}
}

func TestApplyBadDefinitionLeavesMenuIntact(t *testing.T) {
	b := memory.New()
	m := menu.New(b)
	m.Append(menu.NewItem("keep", true, nil))

	w := memory.NewWindow("w")
	m.AttachWindow(w)

	err := Apply(m, &Definition{Items: []Node{{Kind: "bogus"}}})
	if err == nil {
		t.Fatalf("expected build error")
	}
	if len(w.Bar.Items()) != 1 || w.Bar.Items()[0].Text() != "keep" {
		t.Fatalf("failed apply mutated the menu")
	}
}
