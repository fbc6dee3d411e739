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

// Package refcpool allocates reference-count cells.
//
// Every heap object of the runtime carries a reference count stored in an
// 8-byte cell. Cells are allocated and freed far more often than anything
// else, so Pool carves them out of 64-cell blocks tracked by an occupancy
// bitmap, and keeps a few retired blocks warm for reuse.
//
// Allocators are not safe for concurrent use. Use one allocator per
// goroutine, or serialize Alloc, Free and ReleaseAll externally.
package refcpool

// Allocator is the contract shared by Pool and Direct.
type Allocator interface {
	// Alloc returns a zeroed cell.
	Alloc() *int64

	// Free reclaims a cell returned by Alloc.
	Free(cell *int64)

	// ReleaseAll returns all allocator-owned memory to the Heap.
	ReleaseAll()
}

var (
	_ Allocator = (*Pool)(nil)
	_ Allocator = (*Direct)(nil)
)

// Stats holds cumulative counters of an allocator.
type Stats struct {
	Allocs uint64
	Frees  uint64

	BlocksCreated uint64
	BlocksRetired uint64

	// CacheHits counts blocks created from cached memory,
	// BlocksCached counts retired blocks kept by the cache.
	CacheHits    uint64
	BlocksCached uint64

	HeapAllocs uint64
	HeapFrees  uint64
}
