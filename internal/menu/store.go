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

import "gomenu/internal/backend"

// handleStore maps a parent projection id to the native handles representing
// one logical entry inside that parent. Insertion order of parents is kept so
// reads have a stable canonical peer (the first ever registered).
type handleStore struct {
	byParent map[uint32][]backend.Handle
	order    []uint32
}

func (s *handleStore) add(parent uint32, h backend.Handle) {
	if s.byParent == nil {
		s.byParent = make(map[uint32][]backend.Handle)
	}
	if _, ok := s.byParent[parent]; !ok {
		s.order = append(s.order, parent)
	}
	s.byParent[parent] = append(s.byParent[parent], h)
}

// take removes and returns every handle recorded under parent.
func (s *handleStore) take(parent uint32) []backend.Handle {
	hs, ok := s.byParent[parent]
	if !ok {
		return nil
	}
	delete(s.byParent, parent)
	for i, p := range s.order {
		if p == parent {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return hs
}

// first returns the canonical peer: the first handle registered under the
// oldest still-live parent.
func (s *handleStore) first() (backend.Handle, bool) {
	for _, p := range s.order {
		if hs := s.byParent[p]; len(hs) > 0 {
			return hs[0], true
		}
	}
	return nil, false
}

// each visits every live handle in registration order.
func (s *handleStore) each(fn func(h backend.Handle)) {
	for _, p := range s.order {
		for _, h := range s.byParent[p] {
			fn(h)
		}
	}
}

// subProjection is one native instantiation of a submenu under a parent: the
// submenu's own item widget, the nested container, the accelerator group the
// instantiation registers into (nil for context menus), and the id its
// children are keyed under.
type subProjection struct {
	item    backend.Handle
	shell   backend.Shell
	accels  backend.AccelGroup
	childID uint32
}

// subStore is the submenu counterpart of handleStore.
type subStore struct {
	byParent map[uint32][]subProjection
	order    []uint32
}

func (s *subStore) add(parent uint32, sp subProjection) {
	if s.byParent == nil {
		s.byParent = make(map[uint32][]subProjection)
	}
	if _, ok := s.byParent[parent]; !ok {
		s.order = append(s.order, parent)
	}
	s.byParent[parent] = append(s.byParent[parent], sp)
}

func (s *subStore) take(parent uint32) []subProjection {
	sps, ok := s.byParent[parent]
	if !ok {
		return nil
	}
	delete(s.byParent, parent)
	for i, p := range s.order {
		if p == parent {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return sps
}

func (s *subStore) first() (subProjection, bool) {
	for _, p := range s.order {
		if sps := s.byParent[p]; len(sps) > 0 {
			return sps[0], true
		}
	}
	return subProjection{}, false
}

func (s *subStore) each(fn func(sp subProjection)) {
	for _, p := range s.order {
		for _, sp := range s.byParent[p] {
			fn(sp)
		}
	}
}
