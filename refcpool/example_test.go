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

import "fmt"

func Example() {
	p := NewPool(nil)
	defer p.ReleaseAll()

	refc := p.Alloc()
	*refc = 1
	fmt.Println("blocks:", p.Blocks())

	*refc--
	if *refc == 0 {
		p.Free(refc)
	}
	fmt.Println("blocks:", p.Blocks(), "cached:", p.Cached())

	// Output:
	// blocks: 1
	// blocks: 0 cached: 1
}
