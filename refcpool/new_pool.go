//go:build !refcnopool

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

// Pooled reports whether New returns a Pool.
const Pooled = true

// New returns the allocator selected at build time, a Pool by default.
// Build with -tags refcnopool to get a Direct allocator instead.
func New(opt *Option) Allocator {
	return NewPool(opt)
}
