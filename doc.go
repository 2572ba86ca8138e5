// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package backref provides a crash-on-dangle back-reference primitive:
// it detects, at the moment an owned value is torn down, whether any
// non-owning handles into that value are still outstanding, and fails
// loudly instead of letting a dangling reference exist silently.
//
// The package is aimed at library authors who hand out temporary
// non-owning views (iterators, observers, borrowed handles) into
// container-owned or object-owned values and want a deterministic
// lifetime-contract check rather than a latent use-after-free.
//
// # Core Types
//
// Three cooperating types share a single atomically-maintained count of
// outstanding handles:
//
//   - [Cell]: owns a value by storage together with its handle count
//   - [Anchor]: owns a handle count for a value whose storage lives
//     elsewhere, typically inside a composing type with a stable address
//   - [Ref]: a non-owning handle aliasing a Cell's or Anchor's value;
//     creating and releasing Refs are the sole drivers of the count
//
// # Binding and Release
//
// [Borrow] binds a Ref to any [Source] (a Cell, an Anchor, or another
// Ref) and increments the target's count. Every Borrow must be paired
// with exactly one [Ref.Release]; releasing a Ref twice panics. Go has
// no destructors to do this implicitly, so [With] and [WithValue]
// provide the scoped form: borrow, run a function, release on all
// paths including panics.
//
// # Checked Teardown
//
// The single failure condition in the package is tearing down an owner
// while handles remain bound. [Cell.Drop] and [Anchor.Drop] panic in
// that case; this is the default, fail-fast path, because an
// outstanding handle at teardown is a programming defect, not a
// runtime condition to recover from. [Cell.TryDrop] and
// [Anchor.TryDrop] return a [*DanglingError] instead, for callers that
// must not crash; an ignored error leaves the owner un-dropped rather
// than silently dangling.
//
// Teardown never frees anything; the value remains reachable by the
// garbage collector as usual. The check is a lifetime-contract
// assertion, not a memory manager.
//
// # Duplication, Not Transfer
//
// [Ref.Clone] duplicates a binding: the clone binds to the same target
// and increments the count again, so the original and the clone must
// each be released independently. There is no ownership transfer
// between handles; callers expecting move semantics will leak a count
// if they release only one of the two.
//
// # Rebinding
//
// [Ref.Rebind] retargets a live handle: the previously bound count is
// decremented, the newly bound count is incremented, and subsequent
// reads follow the new target. Rebinding a Ref to itself is a no-op.
//
// # Aliasing Semantics
//
// A Ref aliases its owner's storage slot, not a snapshot of the value.
// [Cell.Set] replaces the stored value without touching or checking
// the count, and every bound Ref observes the replacement. Only end of
// life is checked; replacement under live handles is well-defined
// aliasing.
//
// # Concurrency
//
// The handle count is maintained with atomic arithmetic and is safe to
// drive from any number of goroutines; only the net count is
// guaranteed, not any ordering among concurrent binders. The aliased
// value itself is not synchronized by this package at all: callers
// sharing a value across goroutines must add their own synchronization
// around access.
//
// The teardown check is not atomic with respect to concurrent Borrow.
// Callers must quiesce binding before starting teardown: borrowing
// from an owner concurrently with, or after, its Drop is undefined.
package backref
