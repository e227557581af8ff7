/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package accel translates portable accelerator and mnemonic descriptions
// into their native toolkit representations and back.
//
// The portable mnemonic convention marks the access key with '&' before the
// character ("&File" makes F the access key); a doubled "&&" renders a
// literal ampersand. The native convention used on the wire to backends is
// the underscore form ("_File", "__" for a literal underscore). Text set on
// a native widget reads back without drift, with one caveat: the underscore
// form is decoded greedily over "__" pairs, the same way the native toolkit
// parses it, so a marker placed directly before a literal underscore reads
// back after it ("&_" comes back as "_&"). Further round trips of such text
// are stable.
package accel

import "strings"

const (
	portableMarker = '&'
	nativeMarker   = '_'
)

// ToNative converts portable mnemonic text to the native underscore form.
func ToNative(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case portableMarker:
			if i+1 < len(rs) && rs[i+1] == portableMarker {
				// escaped literal marker
				b.WriteRune(portableMarker)
				i++
			} else {
				b.WriteRune(nativeMarker)
			}
		case nativeMarker:
			// escape a literal native marker so FromNative round-trips
			b.WriteRune(nativeMarker)
			b.WriteRune(nativeMarker)
		default:
			b.WriteRune(rs[i])
		}
	}
	return b.String()
}

// FromNative converts native underscore-mnemonic text back to the portable
// ampersand form. It inverts ToNative except where a marker directly
// precedes a literal underscore: the underscore run decodes greedily, moving
// the marker behind the literals (see the package comment).
func FromNative(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case nativeMarker:
			if i+1 < len(rs) && rs[i+1] == nativeMarker {
				b.WriteRune(nativeMarker)
				i++
			} else {
				b.WriteRune(portableMarker)
			}
		case portableMarker:
			b.WriteRune(portableMarker)
			b.WriteRune(portableMarker)
		default:
			b.WriteRune(rs[i])
		}
	}
	return b.String()
}

// Strip removes the mnemonic marker from portable text, keeping escaped
// literal ampersands. Used by backends without access-key support and by the
// compat export.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] == portableMarker {
			if i+1 < len(rs) && rs[i+1] == portableMarker {
				b.WriteRune(portableMarker)
				i++
			}
			// single marker: drop, the following rune is the access key
			continue
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}
