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

// findBlockWithCapacity returns a live block with at least one free slot.
// Newest blocks are scanned first, creating a block if every one is full.
func (p *Pool) findBlockWithCapacity() int32 {
	for id := p.tail; id != nilBlock; id = p.blocks[id].prev {
		if !p.blocks[id].used.Full() {
			return id
		}
	}
	return p.newBlock()
}

// newBlock links a fresh block after the tail.
func (p *Pool) newBlock() int32 {
	mem, reused := p.cache.take()
	if reused {
		p.stats.CacheHits++
	} else {
		mem = p.heap.Malloc(blockBytes)
		p.stats.HeapAllocs++
	}

	var id int32
	if n := len(p.idle); n > 0 {
		id = p.idle[n-1]
		p.idle = p.idle[:n-1]
	} else {
		id = int32(len(p.blocks))
		p.blocks = append(p.blocks, block{})
	}

	b := &p.blocks[id]
	b.activate(mem)
	b.prev = p.tail
	b.next = nilBlock
	if p.tail != nilBlock {
		p.blocks[p.tail].next = id
	} else {
		p.head = id
	}
	p.tail = id

	p.live++
	p.stats.BlocksCreated++
	p.tracer.BlockAcquired(int(id), reused)
	return id
}

// retireBlock unlinks an empty block and hands its memory to the cache,
// or to the Heap if the cache is full.
func (p *Pool) retireBlock(id int32) {
	b := &p.blocks[id]
	if b.prev != nilBlock {
		p.blocks[b.prev].next = b.next
	} else {
		p.head = b.next
	}
	if b.next != nilBlock {
		p.blocks[b.next].prev = b.prev
	} else {
		p.tail = b.prev
	}

	mem := b.mem
	*b = block{prev: nilBlock, next: nilBlock}
	p.idle = append(p.idle, id)
	p.live--

	cached := p.cache.offer(mem)
	if cached {
		p.stats.BlocksCached++
	} else {
		p.heap.Free(mem)
		p.stats.HeapFrees++
	}
	p.stats.BlocksRetired++
	p.tracer.BlockRetired(int(id), cached)
}

// findOwningBlock returns the block and slot holding addr.
// It returns nilBlock if no live block owns addr.
func (p *Pool) findOwningBlock(addr uintptr) (int32, int) {
	for id := p.tail; id != nilBlock; id = p.blocks[id].prev {
		if slot := p.blocks[id].slotOf(addr); slot >= 0 {
			return id, slot
		}
	}
	return nilBlock, -1
}
