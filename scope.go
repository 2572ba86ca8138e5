// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package backref

// Scoped borrows pair acquisition and release around a function call,
// releasing on all exit paths including panics. This is the bracketed
// form of [Borrow] / [Ref.Release] for callers that do not need the
// handle to outlive a scope.

// With borrows from src, calls f with the aliased storage, and
// releases the borrow when f returns or panics.
func With[T any](src Source[T], f func(*T)) {
	r := Borrow(src)
	defer r.Release()
	f(r.Ptr())
}

// WithValue borrows from src, calls f with a copy of the aliased
// value, and releases the borrow when f returns or panics. The
// result of f is returned.
func WithValue[T, R any](src Source[T], f func(T) R) R {
	r := Borrow(src)
	defer r.Release()
	return f(r.Get())
}
