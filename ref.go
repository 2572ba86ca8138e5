// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package backref

// Source is anything a [Ref] can bind to: a [Cell], an [Anchor], or
// another Ref. Binding to a Ref binds to that Ref's own target, so a
// chain of borrows shares one counter.
type Source[T any] interface {
	storage() *T
	counter() *refCounter
}

// Ref is a non-owning handle aliasing a Source's value and counter.
// It owns neither; its creation and release are the sole drivers of
// the counter's arithmetic. A Ref must be released exactly once.
type Ref[T any] struct {
	value *T
	refs  *refCounter
}

// Borrow binds a new Ref to src and increments src's handle count.
// Borrow always succeeds; ordering among concurrent borrowers is not
// guaranteed, only the net count.
func Borrow[T any](src Source[T]) *Ref[T] {
	c := src.counter()
	c.acquire()
	return &Ref[T]{value: src.storage(), refs: c}
}

// Rebind retargets the Ref: the previously bound count is
// decremented, the Ref re-points at src, and src's count is
// incremented. Rebinding a Ref to itself is a no-op.
func (r *Ref[T]) Rebind(src Source[T]) {
	if other, ok := src.(*Ref[T]); ok && other == r {
		return
	}
	r.refs.release()
	r.value = src.storage()
	r.refs = src.counter()
	r.refs.acquire()
}

// Clone duplicates the binding: the clone is bound to the same target
// and the target's count is incremented again. This is duplication,
// not transfer; the receiver and the clone must each be released.
func (r *Ref[T]) Clone() *Ref[T] {
	r.refs.acquire()
	return &Ref[T]{value: r.value, refs: r.refs}
}

// Get returns a copy of the aliased value.
func (r *Ref[T]) Get() T {
	return *r.value
}

// Set replaces the aliased value through the handle. The owner and
// every other handle bound to it observe the new value.
func (r *Ref[T]) Set(v T) {
	*r.value = v
}

// Ptr returns the address of the aliased storage.
func (r *Ref[T]) Ptr() *T {
	return r.value
}

// Release unbinds the Ref, decrementing the count it was bound to.
// Panics if the Ref was already released. The Ref must not be used
// after Release.
func (r *Ref[T]) Release() {
	r.refs.release()
}

func (r *Ref[T]) storage() *T          { return r.value }
func (r *Ref[T]) counter() *refCounter { return r.refs }
