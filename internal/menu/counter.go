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

import "sync/atomic"

var counter atomic.Uint32

// nextID issues a process-unique identifier, used for logical entries and for
// every native projection root. The first value is 1; id 0 always means "no
// parent". Ids are never reused within the process lifetime. Wraparound after
// 2^32 allocations is a documented limitation, not a handled case.
func nextID() uint32 { return counter.Add(1) }
