//go:build tray

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
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/getlantern/systray"
)

// pumpItem wires a pump the way realize does, without needing a running
// tray. Only the click channel of the native item is touched.
func pumpItem(onActivate func()) *trayItem {
	it := &trayItem{
		kind:       kindItem,
		onActivate: onActivate,
		mi:         &systray.MenuItem{ClickedCh: make(chan struct{}, 1)},
	}
	startDispatcher()
	go it.clickPump()
	return it
}

func TestClickInvokesActivate(t *testing.T) {
	var hits sync.WaitGroup
	var count int32
	it := pumpItem(func() {
		atomic.AddInt32(&count, 1)
		hits.Done()
	})

	hits.Add(2)
	it.mi.ClickedCh <- struct{}{}
	it.mi.ClickedCh <- struct{}{}
	hits.Wait()

	if got := atomic.LoadInt32(&count); got != 2 {
		t.Fatalf("activate ran %d times, want 2", got)
	}
}

func TestSimultaneousClicksRunSerialized(t *testing.T) {
	var active int32
	var handled sync.WaitGroup
	handler := func() {
		if n := atomic.AddInt32(&active, 1); n != 1 {
			t.Errorf("%d callbacks active at once, want 1", n)
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&active, -1)
		handled.Done()
	}
	a := pumpItem(handler)
	b := pumpItem(handler)

	const clicksEach = 5
	handled.Add(2 * clicksEach)
	for i := 0; i < clicksEach; i++ {
		a.mi.ClickedCh <- struct{}{}
		b.mi.ClickedCh <- struct{}{}
	}
	handled.Wait()
}
