// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package backref

import (
	"sync/atomic"
)

// refCounter counts the handles currently bound to one owner.
// Exactly one Cell or Anchor owns a given refCounter; handles only
// participate in its arithmetic for as long as they are bound.
//
// Only the net count is meaningful. Go atomics are sequentially
// consistent, but nothing here relies on more than numeric
// correctness: the counter gives no visibility guarantee for the
// value it guards.
type refCounter struct {
	n atomic.Int64
}

// acquire records one more bound handle.
func (c *refCounter) acquire() {
	c.n.Add(1)
}

// release records one fewer bound handle.
// Panics if the count would go negative, which means a handle was
// released more than once.
func (c *refCounter) release() {
	if c.n.Add(-1) < 0 {
		panic("backref: handle released twice")
	}
}

// load returns the current count of bound handles.
func (c *refCounter) load() int64 {
	return c.n.Load()
}
