// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package backref_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/backref"
)

func TestNewCellZeroRefs(t *testing.T) {
	c := backref.NewCell(42)
	if got := c.Refs(); got != 0 {
		t.Fatalf("Refs = %d, want 0", got)
	}
	if got := c.Get(); got != 42 {
		t.Fatalf("Get = %d, want 42", got)
	}
}

func TestCloneFreshCounter(t *testing.T) {
	c := backref.NewCell("alpha")
	r := backref.Borrow[string](c)
	defer r.Release()

	clone := c.Clone()
	if got := clone.Refs(); got != 0 {
		t.Fatalf("clone Refs = %d, want 0", got)
	}
	if got := c.Refs(); got != 1 {
		t.Fatalf("source Refs = %d, want 1 after clone", got)
	}
	if got := clone.Get(); got != "alpha" {
		t.Fatalf("clone Get = %q, want %q", got, "alpha")
	}

	// The outstanding handle stays bound to the source, not the clone.
	c.Set("beta")
	if got := r.Get(); got != "beta" {
		t.Fatalf("handle Get = %q, want %q (still bound to source)", got, "beta")
	}
	if got := clone.Get(); got != "alpha" {
		t.Fatalf("clone Get = %q, want %q after source Set", got, "alpha")
	}
	clone.Drop()
}

func TestSetKeepsCounter(t *testing.T) {
	c := backref.NewCell(1)
	r := backref.Borrow[int](c)

	c.Set(2)
	if got := c.Refs(); got != 1 {
		t.Fatalf("Refs = %d, want 1 after Set", got)
	}
	if got := r.Get(); got != 2 {
		t.Fatalf("handle Get = %d, want 2 (aliases the storage slot)", got)
	}

	r.Release()
	c.Drop()
}

func TestDropClean(t *testing.T) {
	c := backref.NewCell(7)
	c.Drop()
}

func TestDropDanglingPanics(t *testing.T) {
	c := backref.NewCell(7)
	r := backref.Borrow[int](c)
	defer r.Release()

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic from Drop with a bound handle")
		}
		want := "backref: cell dropped while 1 back references exist"
		if s, ok := rec.(string); !ok || s != want {
			t.Fatalf("unexpected panic message: %v", rec)
		}
	}()

	c.Drop()
}

func TestTryDropDangling(t *testing.T) {
	c := backref.NewCell(7)
	r1 := backref.Borrow[int](c)
	r2 := backref.Borrow[int](c)

	err := c.TryDrop()
	if err == nil {
		t.Fatal("expected error from TryDrop with bound handles")
	}
	var dangling *backref.DanglingError
	if !errors.As(err, &dangling) {
		t.Fatalf("error type = %T, want *DanglingError", err)
	}
	if dangling.Refs != 2 {
		t.Fatalf("DanglingError.Refs = %d, want 2", dangling.Refs)
	}

	r1.Release()
	r2.Release()
	if err := c.TryDrop(); err != nil {
		t.Fatalf("TryDrop after releases = %v, want nil", err)
	}
}

func TestDanglingErrorMessage(t *testing.T) {
	err := &backref.DanglingError{Refs: 3}
	want := "backref: still referenced by 3 handle(s)"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

// TestCellLifecycle walks the canonical sequence: two handles bound,
// one released, teardown rejected, second released, teardown accepted.
func TestCellLifecycle(t *testing.T) {
	c := backref.NewCell(42)

	h1 := backref.Borrow[int](c)
	if got := c.Refs(); got != 1 {
		t.Fatalf("Refs = %d, want 1 after first borrow", got)
	}
	h2 := backref.Borrow[int](c)
	if got := c.Refs(); got != 2 {
		t.Fatalf("Refs = %d, want 2 after second borrow", got)
	}

	h1.Release()
	if got := c.Refs(); got != 1 {
		t.Fatalf("Refs = %d, want 1 after first release", got)
	}

	if err := c.TryDrop(); err == nil {
		t.Fatal("expected TryDrop to fail with one handle bound")
	}

	h2.Release()
	if got := c.Refs(); got != 0 {
		t.Fatalf("Refs = %d, want 0 after second release", got)
	}
	c.Drop()
}

func TestCellPtrMutation(t *testing.T) {
	c := backref.NewCell([]int{1, 2})
	r := backref.Borrow[[]int](c)

	*c.Ptr() = append(*c.Ptr(), 3)
	if got := len(r.Get()); got != 3 {
		t.Fatalf("len through handle = %d, want 3", got)
	}

	r.Release()
	c.Drop()
}
