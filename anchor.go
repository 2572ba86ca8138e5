// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package backref

import (
	"fmt"
)

// Anchor owns a handle count for a value whose storage is managed
// elsewhere. It is meant to live inside a composing type whose address
// is stable, making that type borrowable without moving its value into
// a [Cell].
//
// Anchor provides no Set or Clone: replacement and copy semantics of
// the aliased value belong to the composing type.
type Anchor[T any] struct {
	value *T
	refs  refCounter
}

// NewAnchor creates an Anchor for the value at p, with no handles
// bound. The storage at p must outlive the Anchor.
func NewAnchor[T any](p *T) *Anchor[T] {
	return &Anchor[T]{value: p}
}

// Get returns a copy of the aliased value.
func (a *Anchor[T]) Get() T {
	return *a.value
}

// Ptr returns the address of the aliased storage.
func (a *Anchor[T]) Ptr() *T {
	return a.value
}

// Refs returns the number of handles currently bound to the Anchor.
func (a *Anchor[T]) Refs() int {
	return int(a.refs.load())
}

// Drop ends the Anchor's life. Panics if any handle is still bound.
// The same quiescence precondition as [Cell.Drop] applies.
func (a *Anchor[T]) Drop() {
	if n := a.refs.load(); n != 0 {
		panic(fmt.Sprintf("backref: anchor dropped while %d back references exist", n))
	}
}

// TryDrop ends the Anchor's life, returning a [*DanglingError] instead
// of panicking when handles are still bound.
func (a *Anchor[T]) TryDrop() error {
	if n := a.refs.load(); n != 0 {
		return &DanglingError{Refs: int(n)}
	}
	return nil
}

func (a *Anchor[T]) storage() *T          { return a.value }
func (a *Anchor[T]) counter() *refCounter { return &a.refs }
