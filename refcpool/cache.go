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

// blockCache is a bounded stash of retired block memory.
type blockCache struct {
	mems [][]byte
}

func newBlockCache(size int) blockCache {
	return blockCache{mems: make([][]byte, 0, size)}
}

// take returns a cached blank, or false if the cache is empty.
func (c *blockCache) take() ([]byte, bool) {
	n := len(c.mems)
	if n == 0 {
		return nil, false
	}
	mem := c.mems[n-1]
	c.mems[n-1] = nil
	c.mems = c.mems[:n-1]
	return mem, true
}

// offer stores mem and returns true, or returns false if the cache is full.
func (c *blockCache) offer(mem []byte) bool {
	if len(c.mems) == cap(c.mems) {
		return false
	}
	c.mems = append(c.mems, mem)
	return true
}

func (c *blockCache) len() int {
	return len(c.mems)
}

// drain removes every cached blank and passes it to f.
func (c *blockCache) drain(f func(mem []byte)) {
	for i, mem := range c.mems {
		f(mem)
		c.mems[i] = nil
	}
	c.mems = c.mems[:0]
}
