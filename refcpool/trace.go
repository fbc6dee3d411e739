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
	"log"
	"os"
)

// Tracer receives diagnostic events from a Pool.
// Implementations must not call back into the Pool.
type Tracer interface {
	// BlockAcquired is called when a block joins the list. reused is true if
	// its memory came from the block cache.
	BlockAcquired(block int, reused bool)

	// CellAllocated is called after slot of block is handed out.
	CellAllocated(block, slot int)

	// CellFreed is called after slot of block is marked free.
	CellFreed(block, slot int)

	// BlockRetired is called when an empty block leaves the list. cached is
	// false if its memory went back to the Heap.
	BlockRetired(block int, cached bool)
}

// NopTracer ignores every event.
type NopTracer struct{}

func (NopTracer) BlockAcquired(int, bool) {}
func (NopTracer) CellAllocated(int, int)  {}
func (NopTracer) CellFreed(int, int)      {}
func (NopTracer) BlockRetired(int, bool)  {}

// LogTracer writes one line per event.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer returns a LogTracer writing to l.
// If l is nil, events go to stderr with microsecond timestamps.
func NewLogTracer(l *log.Logger) *LogTracer {
	if l == nil {
		l = log.New(os.Stderr, "REFCPOOL: ", log.LstdFlags|log.Lmicroseconds)
	}
	return &LogTracer{logger: l}
}

func (t *LogTracer) BlockAcquired(block int, reused bool) {
	t.logger.Printf("block acquired: id=%d reused=%t", block, reused)
}

func (t *LogTracer) CellAllocated(block, slot int) {
	t.logger.Printf("cell allocated: block=%d slot=%d", block, slot)
}

func (t *LogTracer) CellFreed(block, slot int) {
	t.logger.Printf("cell freed: block=%d slot=%d", block, slot)
}

func (t *LogTracer) BlockRetired(block int, cached bool) {
	t.logger.Printf("block retired: id=%d cached=%t", block, cached)
}
