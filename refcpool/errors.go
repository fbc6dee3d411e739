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
	"errors"
	"fmt"
)

var (
	// ErrUnknownCell is reported when freeing an address that no live block owns.
	ErrUnknownCell = errors.New("cell not found in any block")

	// ErrDoubleFree is reported when freeing a cell whose slot is already free.
	ErrDoubleFree = errors.New("cell already free")
)

// FatalError is the panic value raised on an invariant violation.
// Continuing after it risks corrupting unrelated blocks, so it is never returned.
type FatalError struct {
	Err  error
	Addr uintptr
}

func newFatalError(err error, addr uintptr) *FatalError {
	return &FatalError{Err: err, Addr: addr}
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("refcpool: %v: %#x", e.Err, e.Addr)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
