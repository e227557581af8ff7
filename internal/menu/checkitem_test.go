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

import (
	"testing"

	"gomenu/internal/backend/memory"
)

// checkWidgets returns every projected native peer of the reference tree's
// check item, one per attached window.
func checkWidgets(t *testing.T, windows ...*memory.Window) []*memory.Widget {
	t.Helper()
	var peers []*memory.Widget
	for _, w := range windows {
		items := fileShell(t, w).Items()
		peers = append(peers, items[len(items)-1])
	}
	return peers
}

func TestToggleSyncsAllPeersWithOneEvent(t *testing.T) {
	b := memory.New()
	got := collectEvents(t)
	m, _, _, checkB := buildFileMenu(b)

	w1 := memory.NewWindow("w1")
	w2 := memory.NewWindow("w2")
	w3 := memory.NewWindow("w3")
	m.AttachWindow(w1)
	m.AttachWindow(w2)
	m.AttachWindow(w3)
	peers := checkWidgets(t, w1, w2, w3)

	// the user clicks the peer in w1; the propagation pass re-fires each
	// remaining peer's own notification, which the guard must absorb
	peers[0].ClickToggle()

	for i, p := range peers {
		if !p.Checked() {
			t.Fatalf("peer %d not checked after toggle", i)
		}
	}
	if !checkB.Checked() {
		t.Fatalf("logical state not updated")
	}
	if len(*got) != 1 || (*got)[0].ID != checkB.ID() {
		t.Fatalf("events = %+v, want exactly one with id %d", *got, checkB.ID())
	}
}

func TestToggleBackAndForth(t *testing.T) {
	b := memory.New()
	got := collectEvents(t)
	m, _, _, checkB := buildFileMenu(b)

	w1 := memory.NewWindow("w1")
	w2 := memory.NewWindow("w2")
	m.AttachWindow(w1)
	m.AttachWindow(w2)
	peers := checkWidgets(t, w1, w2)

	peers[0].ClickToggle() // on, from w1
	peers[1].ClickToggle() // off, from w2

	if checkB.Checked() {
		t.Fatalf("state should be off after the second toggle")
	}
	for i, p := range peers {
		if p.Checked() {
			t.Fatalf("peer %d still checked", i)
		}
	}
	if len(*got) != 2 {
		t.Fatalf("%d events, want 2", len(*got))
	}
}

func TestRedundantNotificationsSwallowedDuringSync(t *testing.T) {
	b := memory.New()
	got := collectEvents(t)
	m, _, _, _ := buildFileMenu(b)

	windows := []*memory.Window{
		memory.NewWindow("w1"), memory.NewWindow("w2"),
		memory.NewWindow("w3"), memory.NewWindow("w4"),
	}
	for _, w := range windows {
		m.AttachWindow(w)
	}
	peers := checkWidgets(t, windows...)

	// a single click fans to three other peers, each of which fires its own
	// synthetic notification; the count proves no storm and no recursion
	peers[2].ClickToggle()
	if len(*got) != 1 {
		t.Fatalf("%d events from one click across 4 windows, want 1", len(*got))
	}
}

func TestGuardIsIdleAfterSync(t *testing.T) {
	b := memory.New()
	got := collectEvents(t)
	m, _, _, _ := buildFileMenu(b)

	w := memory.NewWindow("w")
	m.AttachWindow(w)
	peer := checkWidgets(t, w)[0]

	peer.ClickToggle()
	// the guard must have been released: a later genuine re-notification is
	// treated as a new toggle, not dropped
	peer.FireToggle()
	if len(*got) != 2 {
		t.Fatalf("%d events, want 2 (guard stuck in syncing state?)", len(*got))
	}
}

func TestSetCheckedSilentAndIdempotent(t *testing.T) {
	b := memory.New()
	got := collectEvents(t)
	m, _, _, checkB := buildFileMenu(b)

	w1 := memory.NewWindow("w1")
	w2 := memory.NewWindow("w2")
	m.AttachWindow(w1)
	m.AttachWindow(w2)
	peers := checkWidgets(t, w1, w2)

	checkB.SetChecked(true)
	for i, p := range peers {
		if !p.Checked() {
			t.Fatalf("peer %d not updated by SetChecked", i)
		}
	}
	// programmatic change: peers fired synthetic notifications, none surfaced
	if len(*got) != 0 {
		t.Fatalf("programmatic SetChecked published %d events, want 0", len(*got))
	}

	checkB.SetChecked(true) // no state change anywhere
	if !checkB.Checked() || len(*got) != 0 {
		t.Fatalf("idempotent SetChecked changed state or published events")
	}
}

func TestCheckedWithoutProjection(t *testing.T) {
	c := NewCheckItem("Standalone", true, true, nil)
	if !c.Checked() {
		t.Fatalf("unprojected Checked() should read the logical cache")
	}
	c.SetChecked(false)
	if c.Checked() {
		t.Fatalf("unprojected SetChecked must update the logical cache")
	}
}

func TestNewWindowSeesCheckedState(t *testing.T) {
	b := memory.New()
	m, _, _, _ := buildFileMenu(b)

	w1 := memory.NewWindow("w1")
	m.AttachWindow(w1)
	checkWidgets(t, w1)[0].ClickToggle()

	w2 := memory.NewWindow("w2")
	m.AttachWindow(w2)
	if !checkWidgets(t, w2)[0].Checked() {
		t.Fatalf("late window projected stale check state")
	}
}
