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

// DefaultCacheSize is the number of retired blocks kept for reuse by default.
// 16 blocks of 512 bytes keep the stash at 8KB.
const DefaultCacheSize = 16

// Option configures a Pool or a Direct allocator.
type Option struct {
	// CacheSize is the max number of retired blocks kept warm for reuse.
	// 0 means DefaultCacheSize, a negative value disables the cache.
	CacheSize int

	// Heap supplies block memory. nil means DefaultHeap.
	Heap Heap

	// Tracer receives diagnostic events. nil means NopTracer unless built
	// with the refctrace tag.
	Tracer Tracer
}

// DefaultOption returns the default values of Option.
func DefaultOption() *Option {
	return &Option{
		CacheSize: DefaultCacheSize,
		Heap:      DefaultHeap,
		Tracer:    defaultTracer(),
	}
}

// normalize returns a copy of o with unset fields filled in.
func (o *Option) normalize() Option {
	if o == nil {
		return *DefaultOption()
	}
	ret := *o
	switch {
	case ret.CacheSize == 0:
		ret.CacheSize = DefaultCacheSize
	case ret.CacheSize < 0:
		ret.CacheSize = 0
	}
	if ret.Heap == nil {
		ret.Heap = DefaultHeap
	}
	if ret.Tracer == nil {
		ret.Tracer = defaultTracer()
	}
	return ret
}
