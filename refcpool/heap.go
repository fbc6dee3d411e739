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

import "github.com/bytedance/gopkg/lang/mcache"

// Heap is the general-purpose allocator backing block memory.
// Malloc must return a zero-offset, 8-byte aligned buffer with len == size.
type Heap interface {
	Malloc(size int) []byte
	Free(buf []byte)
}

// DefaultHeap serves memory from mcache size-classed pools.
var DefaultHeap Heap = mcacheHeap{}

type mcacheHeap struct{}

func (mcacheHeap) Malloc(size int) []byte {
	return mcache.Malloc(size)
}

func (mcacheHeap) Free(buf []byte) {
	mcache.Free(buf)
}
