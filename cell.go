// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package backref

import (
	"fmt"
)

// Cell owns a value by storage together with the count of handles
// bound to it. Handles created with [Borrow] alias the Cell's storage
// slot, so a value replaced with [Cell.Set] is observed by every bound
// handle.
type Cell[T any] struct {
	value T
	refs  refCounter
}

// NewCell creates a Cell owning v, with no handles bound.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Clone copies the stored value into a fresh Cell with a count of
// zero. Handles bound to the receiver stay bound to the receiver;
// back-reference counts are never inherited across copies.
func (c *Cell[T]) Clone() *Cell[T] {
	return &Cell[T]{value: c.value}
}

// Set replaces the stored value. The handle count is neither checked
// nor changed: handles already bound keep aliasing the storage slot
// and observe the new value. Only teardown checks the count.
func (c *Cell[T]) Set(v T) {
	c.value = v
}

// Get returns a copy of the stored value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Ptr returns the address of the storage slot.
func (c *Cell[T]) Ptr() *T {
	return &c.value
}

// Refs returns the number of handles currently bound to the Cell.
func (c *Cell[T]) Refs() int {
	return int(c.refs.load())
}

// Drop ends the Cell's life. Panics if any handle is still bound;
// an outstanding handle at teardown is a programming defect, not a
// recoverable condition. Use [Cell.TryDrop] for the checked form.
//
// Drop is not atomic with respect to concurrent [Borrow]: callers
// must quiesce binding before teardown.
func (c *Cell[T]) Drop() {
	if n := c.refs.load(); n != 0 {
		panic(fmt.Sprintf("backref: cell dropped while %d back references exist", n))
	}
}

// TryDrop ends the Cell's life, returning a [*DanglingError] instead
// of panicking when handles are still bound. A non-nil return leaves
// the Cell un-dropped.
func (c *Cell[T]) TryDrop() error {
	if n := c.refs.load(); n != 0 {
		return &DanglingError{Refs: int(n)}
	}
	return nil
}

func (c *Cell[T]) storage() *T          { return &c.value }
func (c *Cell[T]) counter() *refCounter { return &c.refs }

// DanglingError reports a teardown attempted while back references
// were still bound to the owner.
type DanglingError struct {
	// Refs is the number of handles that were still bound when the
	// teardown was attempted.
	Refs int
}

func (e *DanglingError) Error() string {
	return fmt.Sprintf("backref: still referenced by %d handle(s)", e.Refs)
}
