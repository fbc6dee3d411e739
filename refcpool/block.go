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

import (
	"unsafe"

	"github.com/cloudwego/refcount/internal/occupancy"
)

const (
	// CellSize is the size in bytes of one reference-count cell.
	CellSize = int(unsafe.Sizeof(int64(0)))

	// BlockCells is the number of cells in a block.
	BlockCells = occupancy.Slots

	blockBytes = BlockCells * CellSize
)

// nilBlock marks an empty link or list end.
const nilBlock int32 = -1

// block owns BlockCells cells stored in mem.
// mem is never resized, so cell addresses stay valid while the block is live.
type block struct {
	used occupancy.Bitmap

	prev int32
	next int32

	base  uintptr // address of cells[0]
	mem   []byte
	cells []int64
}

// activate binds mem to b and clears every slot.
func (b *block) activate(mem []byte) {
	b.mem = mem[:blockBytes]
	b.cells = unsafe.Slice((*int64)(unsafe.Pointer(&b.mem[0])), BlockCells)
	b.base = uintptr(unsafe.Pointer(&b.cells[0]))
	for i := range b.cells {
		b.cells[i] = 0
	}
	b.used.Reset()
}

// allocCell takes the lowest free slot. b must not be full.
func (b *block) allocCell() (*int64, int) {
	slot := b.used.Take()
	cell := &b.cells[slot]
	*cell = 0
	return cell, slot
}

// slotOf returns the slot holding addr, or -1 if addr is not one of b's cells.
func (b *block) slotOf(addr uintptr) int {
	// addr < base wraps around and fails the bound check
	off := addr - b.base
	if off >= uintptr(blockBytes) || off%uintptr(CellSize) != 0 {
		return -1
	}
	return int(off / uintptr(CellSize))
}
