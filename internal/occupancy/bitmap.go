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

// Package occupancy provides a single-word slot bitmap.
package occupancy

import "math/bits"

// Slots is the number of slots tracked by a Bitmap.
const Slots = 64

const (
	allFree = uint64(0)
	allUsed = ^uint64(0)
)

// Bitmap tracks 64 slots, bit i set means slot i is in use.
// The zero value has every slot free.
type Bitmap uint64

// First returns the lowest free slot, or -1 if every slot is used.
func (b Bitmap) First() int {
	if uint64(b) == allUsed {
		return -1
	}
	return bits.TrailingZeros64(^uint64(b))
}

// Take marks the lowest free slot as used and returns it.
// Returns -1 and leaves b unchanged if b is full.
func (b *Bitmap) Take() int {
	i := b.First()
	if i >= 0 {
		*b |= 1 << uint(i)
	}
	return i
}

// Clear marks slot i as free.
func (b *Bitmap) Clear(i int) {
	*b &^= 1 << uint(i)
}

// IsSet returns true if slot i is used.
func (b Bitmap) IsSet(i int) bool {
	return b&(1<<uint(i)) != 0
}

// Full returns true if no slot is free.
func (b Bitmap) Full() bool { return uint64(b) == allUsed }

// Empty returns true if no slot is used.
func (b Bitmap) Empty() bool { return uint64(b) == allFree }

// Used returns the number of used slots.
func (b Bitmap) Used() int { return bits.OnesCount64(uint64(b)) }

// Reset frees every slot.
func (b *Bitmap) Reset() { *b = Bitmap(allFree) }
