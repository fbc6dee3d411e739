/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package refcpool

import "unsafe"

// Direct allocates every cell straight from the Heap.
// It does not validate addresses passed to Free; use it for debugging
// or where pooling is undesirable.
type Direct struct {
	heap  Heap
	stats Stats
}

// NewDirect creates a Direct allocator. Only opt.Heap is used; opt may be nil.
func NewDirect(opt *Option) *Direct {
	o := opt.normalize()
	return &Direct{heap: o.Heap}
}

// Alloc returns a zeroed cell.
func (d *Direct) Alloc() *int64 {
	buf := d.heap.Malloc(CellSize)
	cell := (*int64)(unsafe.Pointer(&buf[0]))
	*cell = 0
	d.stats.Allocs++
	d.stats.HeapAllocs++
	return cell
}

// Free returns cell to the Heap. A nil cell is ignored.
func (d *Direct) Free(cell *int64) {
	if cell == nil {
		return
	}
	d.heap.Free(unsafe.Slice((*byte)(unsafe.Pointer(cell)), CellSize))
	d.stats.Frees++
	d.stats.HeapFrees++
}

// ReleaseAll does nothing, Direct owns no memory between calls.
func (d *Direct) ReleaseAll() {}

// Stats returns the counters accumulated since d was created.
func (d *Direct) Stats() Stats {
	return d.stats
}
