/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package export moves menu trees between the engine's logical form and a
// file representation (YAML or JSON). Definitions can be built into live
// entries, snapshotted back from a running menu, and hot-reloaded from disk.
package export

import (
	"fmt"

	"gomenu/internal/accel"
	"gomenu/internal/backend"
	"gomenu/internal/menu"
)

// Node kinds accepted in a definition file.
const (
	KindItem        = "item"
	KindCheck       = "check"
	KindSubmenu     = "submenu"
	KindSeparator   = "separator"
	KindCopy        = "copy"
	KindCut         = "cut"
	KindPaste       = "paste"
	KindSelectAll   = "select-all"
	KindQuit        = "quit"
	KindCloseWindow = "close-window"
	KindMinimize    = "minimize"
	KindAbout       = "about"
)

// Node is one entry of a menu definition. Text uses the portable mnemonic
// form ("&File"). Predefined kinds ignore Text, Checked, Accel and Children.
type Node struct {
	Kind     string     `yaml:"kind" json:"kind"`
	Text     string     `yaml:"text,omitempty" json:"text,omitempty"`
	Disabled bool       `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Checked  bool       `yaml:"checked,omitempty" json:"checked,omitempty"`
	Accel    string     `yaml:"accel,omitempty" json:"accel,omitempty"`
	Children []Node     `yaml:"children,omitempty" json:"children,omitempty"`
	About    *AboutNode `yaml:"about,omitempty" json:"about,omitempty"`
}

// AboutNode carries the metadata for an "about" node.
type AboutNode struct {
	Name         string   `yaml:"name,omitempty" json:"name,omitempty"`
	Version      string   `yaml:"version,omitempty" json:"version,omitempty"`
	Authors      []string `yaml:"authors,omitempty" json:"authors,omitempty"`
	Comments     string   `yaml:"comments,omitempty" json:"comments,omitempty"`
	Copyright    string   `yaml:"copyright,omitempty" json:"copyright,omitempty"`
	Website      string   `yaml:"website,omitempty" json:"website,omitempty"`
	WebsiteLabel string   `yaml:"website_label,omitempty" json:"website_label,omitempty"`
	License      string   `yaml:"license,omitempty" json:"license,omitempty"`
}

// Definition is the top-level shape of a menu definition file.
type Definition struct {
	Version int    `yaml:"version,omitempty" json:"version,omitempty"`
	Items   []Node `yaml:"items" json:"items"`
}

// Build turns definition nodes into live logical entries, in order.
func Build(nodes []Node) ([]menu.Entry, error) {
	out := make([]menu.Entry, 0, len(nodes))
	for i, n := range nodes {
		e, err := buildNode(n)
		if err != nil {
			return nil, fmt.Errorf("node %d (%s): %w", i, n.Kind, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func buildNode(n Node) (menu.Entry, error) {
	switch n.Kind {
	case KindItem:
		a, err := parseAccel(n.Accel)
		if err != nil {
			return nil, err
		}
		it := menu.NewItem(n.Text, !n.Disabled, a)
		return it, nil
	case KindCheck:
		a, err := parseAccel(n.Accel)
		if err != nil {
			return nil, err
		}
		return menu.NewCheckItem(n.Text, !n.Disabled, n.Checked, a), nil
	case KindSubmenu:
		children, err := Build(n.Children)
		if err != nil {
			return nil, err
		}
		return menu.NewSubmenuWithItems(n.Text, !n.Disabled, children...), nil
	case KindSeparator:
		return menu.Separator(), nil
	case KindCopy:
		return menu.Copy(), nil
	case KindCut:
		return menu.Cut(), nil
	case KindPaste:
		return menu.Paste(), nil
	case KindSelectAll:
		return menu.SelectAll(), nil
	case KindQuit:
		return menu.Quit(), nil
	case KindCloseWindow:
		return menu.CloseWindow(), nil
	case KindMinimize:
		return menu.Minimize(), nil
	case KindAbout:
		return menu.About(aboutMetadata(n.About)), nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
}

func parseAccel(s string) (*accel.Accelerator, error) {
	if s == "" {
		return nil, nil
	}
	a, err := accel.Parse(s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func aboutMetadata(n *AboutNode) *backend.AboutMetadata {
	if n == nil {
		return nil
	}
	return &backend.AboutMetadata{
		Name:         n.Name,
		Version:      n.Version,
		Authors:      n.Authors,
		Comments:     n.Comments,
		Copyright:    n.Copyright,
		Website:      n.Website,
		WebsiteLabel: n.WebsiteLabel,
		License:      n.License,
	}
}

func aboutNode(m *backend.AboutMetadata) *AboutNode {
	if m == nil {
		return nil
	}
	return &AboutNode{
		Name:         m.Name,
		Version:      m.Version,
		Authors:      m.Authors,
		Comments:     m.Comments,
		Copyright:    m.Copyright,
		Website:      m.Website,
		WebsiteLabel: m.WebsiteLabel,
		License:      m.License,
	}
}

// Snapshot reads a running tree back into definition nodes through the
// engine's getters, so native drift (text changed behind the engine's back)
// is captured.
func Snapshot(entries []menu.Entry) []Node {
	out := make([]Node, 0, len(entries))
	for _, e := range entries {
		out = append(out, snapshotEntry(e))
	}
	return out
}

func snapshotEntry(e menu.Entry) Node {
	n := Node{
		Text:     e.Text(),
		Disabled: !e.Enabled(),
	}
	if a := e.Accelerator(); a != nil {
		n.Accel = a.String()
	}
	switch e := e.(type) {
	case *menu.Submenu:
		n.Kind = KindSubmenu
		n.Accel = ""
		n.Children = Snapshot(e.Items())
	case *menu.Item:
		n.Kind = KindItem
	case *menu.CheckItem:
		n.Kind = KindCheck
		n.Checked = e.Checked()
	case *menu.Predefined:
		n = Node{Kind: predefinedKindName(e.PredefinedKind()), About: aboutNode(e.AboutMetadata())}
	}
	return n
}

func predefinedKindName(k backend.PredefinedKind) string {
	switch k {
	case backend.PredefinedCopy:
		return KindCopy
	case backend.PredefinedCut:
		return KindCut
	case backend.PredefinedPaste:
		return KindPaste
	case backend.PredefinedSelectAll:
		return KindSelectAll
	case backend.PredefinedQuit:
		return KindQuit
	case backend.PredefinedCloseWindow:
		return KindCloseWindow
	case backend.PredefinedMinimize:
		return KindMinimize
	case backend.PredefinedAbout:
		return KindAbout
	default:
		return KindSeparator
	}
}

// Apply replaces the children of m with the definition's items. The swap goes
// through the public mutation operations, so every attached window and
// registered context menu updates in place.
func Apply(m *menu.Menu, def *Definition) error {
	entries, err := Build(def.Items)
	if err != nil {
		return err
	}
	for m.RemoveAt(0) != nil {
	}
	m.AppendItems(entries...)
	return nil
}
