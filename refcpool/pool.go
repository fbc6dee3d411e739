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

// Pool hands out cells from a list of 64-cell blocks.
//
// Blocks live in an arena indexed by id and are chained from head to tail in
// creation order. A block leaves the chain as soon as its last cell is freed.
type Pool struct {
	blocks []block
	idle   []int32 // arena ids free for reuse

	head int32
	tail int32
	live int

	cache  blockCache
	heap   Heap
	tracer Tracer
	stats  Stats
}

// NewPool creates a Pool. opt may be nil.
func NewPool(opt *Option) *Pool {
	o := opt.normalize()
	return &Pool{
		head:   nilBlock,
		tail:   nilBlock,
		cache:  newBlockCache(o.CacheSize),
		heap:   o.Heap,
		tracer: o.Tracer,
	}
}

// Alloc returns a zeroed cell.
// The cell address is stable until it is passed to Free.
func (p *Pool) Alloc() *int64 {
	id := p.findBlockWithCapacity()
	cell, slot := p.blocks[id].allocCell()
	p.stats.Allocs++
	p.tracer.CellAllocated(int(id), slot)
	return cell
}

// Free reclaims a cell returned by Alloc.
// It panics with a *FatalError if cell is not a live cell of p.
func (p *Pool) Free(cell *int64) {
	addr := uintptr(unsafe.Pointer(cell))
	id, slot := p.findOwningBlock(addr)
	if id == nilBlock {
		panic(newFatalError(ErrUnknownCell, addr))
	}
	b := &p.blocks[id]
	if !b.used.IsSet(slot) {
		panic(newFatalError(ErrDoubleFree, addr))
	}
	b.used.Clear(slot)
	p.stats.Frees++
	p.tracer.CellFreed(int(id), slot)
	if b.used.Empty() {
		p.retireBlock(id)
	}
}

// ReleaseAll returns every live and cached block to the Heap.
// Cells obtained before must not be used or freed afterwards.
// The Pool may be used again and behaves like a new one.
func (p *Pool) ReleaseAll() {
	for id := p.head; id != nilBlock; id = p.blocks[id].next {
		p.heap.Free(p.blocks[id].mem)
		p.stats.HeapFrees++
	}
	p.cache.drain(func(mem []byte) {
		p.heap.Free(mem)
		p.stats.HeapFrees++
	})
	p.blocks = nil
	p.idle = nil
	p.head = nilBlock
	p.tail = nilBlock
	p.live = 0
}

// Blocks returns the number of live blocks.
func (p *Pool) Blocks() int {
	return p.live
}

// InUse returns the number of cells handed out and not yet freed.
func (p *Pool) InUse() int {
	n := 0
	for id := p.head; id != nilBlock; id = p.blocks[id].next {
		n += p.blocks[id].used.Used()
	}
	return n
}

// Cached returns the number of retired blocks held by the cache.
func (p *Pool) Cached() int {
	return p.cache.len()
}

// Stats returns the counters accumulated since p was created.
func (p *Pool) Stats() Stats {
	return p.stats
}
