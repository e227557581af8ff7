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

import "testing"

func TestMnemonicToNative(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"File", "File"},
		{"&File", "_File"},
		{"Save &As", "Save _As"},
		{"Fish && Chips", "Fish & Chips"},
		{"snake_case", "snake__case"},
		{"&A && _B", "_A & __B"},
	}
	for _, c := range cases {
		if got := ToNative(c.in); got != c.want {
			t.Fatalf("ToNative(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMnemonicFromNative(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"File", "File"},
		{"_File", "&File"},
		{"Save _As", "Save &As"},
		{"snake__case", "snake_case"},
		{"Fish & Chips", "Fish && Chips"},
	}
	for _, c := range cases {
		if got := FromNative(c.in); got != c.want {
			t.Fatalf("FromNative(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMnemonicRoundTrip(t *testing.T) {
	// zero, one, and escaped-doubled markers on both sides
	portable := []string{"", "File", "&File", "Fish && Chips", "a_b", "&X __ &&"}
	for _, s := range portable {
		if got := FromNative(ToNative(s)); got != s {
			t.Fatalf("FromNative(ToNative(%q)) = %q", s, got)
		}
	}
	native := []string{"", "File", "_File", "snake__case", "a&b"}
	for _, s := range native {
		if got := ToNative(FromNative(s)); got != s {
			t.Fatalf("ToNative(FromNative(%q)) = %q", s, got)
		}
	}
}

func TestMnemonicMarkerBeforeUnderscoreNormalizes(t *testing.T) {
	// A marker directly before a literal underscore merges into one
	// underscore run on the wire; the greedy decode moves the marker behind
	// the literals. After that first normalization the text is stable.
	if got := ToNative("&_"); got != "___" {
		t.Fatalf("ToNative(\"&_\") = %q", got)
	}
	if got := FromNative("___"); got != "_&" {
		t.Fatalf("FromNative(\"___\") = %q", got)
	}
	for _, s := range []string{"&_", "&__x", "a&_b"} {
		once := FromNative(ToNative(s))
		if twice := FromNative(ToNative(once)); twice != once {
			t.Fatalf("round trip of %q not stable: %q then %q", s, once, twice)
		}
	}
}

func TestStrip(t *testing.T) {
	cases := []struct{ in, want string }{
		{"&File", "File"},
		{"Fish && Chips", "Fish & Chips"},
		{"Plain", "Plain"},
		{"&", ""},
	}
	for _, c := range cases {
		if got := Strip(c.in); got != c.want {
			t.Fatalf("Strip(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseAccelerator(t *testing.T) {
	a, err := Parse("Ctrl+Shift+S")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !a.Mods.Has(ModCtrl|ModShift) || a.Mods.Has(ModAlt) || a.Key != "S" {
		t.Fatalf("unexpected accelerator: %+v", a)
	}
	if a.String() != "Ctrl+Shift+S" {
		t.Fatalf("String() = %q", a.String())
	}

	a, err = Parse("alt+f4")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !a.Mods.Has(ModAlt) || a.Key != "F4" {
		t.Fatalf("unexpected accelerator: %+v", a)
	}

	a, err = Parse("cmd+q")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !a.Mods.Has(ModSuper) || a.Key != "Q" {
		t.Fatalf("unexpected accelerator: %+v", a)
	}
}

func TestParseAcceleratorErrors(t *testing.T) {
	for _, s := range []string{"", "Ctrl+", "Bogus+S", "Ctrl+Shift"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", s)
		}
	}
}
