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
	"log/slog"

	applog "gomenu/internal/log"
)

// Event is delivered once per user-originated activation or settled check
// toggle, carrying the logical entry id. Programmatic mutations never produce
// events, and a toggle produces exactly one event no matter how many native
// peers the item has.
type Event struct {
	ID uint32
}

var (
	events  = make(chan Event, 128)
	handler func(Event)
)

// Events returns the application event channel.
func Events() <-chan Event { return events }

// SetEventHandler routes events to fn instead of the channel. Pass nil to
// restore channel delivery. Like everything else here, this is a
// single-thread API.
func SetEventHandler(fn func(Event)) { handler = fn }

func publish(ev Event) {
	if handler != nil {
		handler(ev)
		return
	}
	select {
	case events <- ev:
	default:
		// never stall the UI thread on a full channel
		applog.WithComponent("menu").Warn("event dropped, channel full", slog.Int("id", int(ev.ID)))
	}
}
