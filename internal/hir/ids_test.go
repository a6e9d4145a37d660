package hir_test

import (
	"errors"
	"slices"
	"testing"

	"oxbow/internal/def"
	"oxbow/internal/hir"
)

func TestHirID_CompareAndString(t *testing.T) {
	a := hir.HirID{Owner: 1, Local: 5}
	b := hir.HirID{Owner: 2, Local: 0}
	c := hir.HirID{Owner: 2, Local: 3}
	if a.Compare(b) >= 0 || b.Compare(c) >= 0 || c.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Fatalf("unexpected ordering of %s, %s, %s", a, b, c)
	}
	if got := a.String(); got != "HirID(1.5)" {
		t.Errorf("String() = %q", got)
	}
	if !b.IsOwner() || a.IsOwner() {
		t.Errorf("IsOwner mismatch")
	}
}

func TestLocalLess(t *testing.T) {
	if !hir.LocalLess(hir.HirID{Owner: 3, Local: 1}, hir.HirID{Owner: 3, Local: 2}) {
		t.Errorf("LocalLess(3.1, 3.2) = false")
	}
	expectInvariantPanic(t, func() {
		hir.LocalLess(hir.HirID{Owner: 3, Local: 1}, hir.HirID{Owner: 4, Local: 2})
	})
}

func TestIDAllocator_DenseLocalSpaces(t *testing.T) {
	alloc := hir.NewIDAllocator(def.DefaultPolicy())

	owner := alloc.NewOwner(def.ClassItem)
	if owner.Local != 0 {
		t.Fatalf("owner local = %d, want 0", owner.Local)
	}
	var locals []hir.ItemLocalID
	for range 4 {
		locals = append(locals, alloc.Next(owner.Owner).Local)
	}
	if !slices.Equal(locals, []hir.ItemLocalID{1, 2, 3, 4}) {
		t.Errorf("locals = %v, want 1..4", locals)
	}
	if got := alloc.LocalCount(owner.Owner); got != 5 {
		t.Errorf("LocalCount = %d, want 5", got)
	}

	other := alloc.NewOwner(def.ClassTraitItem)
	if other.Owner == owner.Owner {
		t.Fatalf("owners collide: %s", other)
	}
	if id := alloc.Next(other.Owner); id.Local != 1 {
		t.Errorf("first local of new owner = %d, want 1", id.Local)
	}

	did, ok := alloc.DefOf(owner)
	if !ok {
		t.Fatalf("owner has no DefID")
	}
	if back, ok := alloc.HirOf(did.Index); !ok || back != owner {
		t.Errorf("HirOf(%v) = %s, %v", did, back, ok)
	}
}

func TestIDAllocator_Policy(t *testing.T) {
	tests := []struct {
		class def.NodeClass
		want  bool
	}{
		{def.ClassField, true},
		{def.ClassClosure, true},
		{def.ClassExpr, false},
		{def.ClassPat, false},
	}
	alloc := hir.NewIDAllocator(def.DefaultPolicy())
	owner := alloc.NewOwner(def.ClassItem).Owner
	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			id, did, ok := alloc.NextWithDef(owner, tt.class)
			if ok != tt.want {
				t.Fatalf("NextWithDef(%s) assigned = %v, want %v", tt.class, ok, tt.want)
			}
			if got, found := alloc.DefOf(id); found != tt.want || (ok && got != did) {
				t.Errorf("DefOf(%s) = %v, %v", id, got, found)
			}
		})
	}
}

func TestIDAllocator_UnopenedOwnerPanics(t *testing.T) {
	alloc := hir.NewIDAllocator(def.DefaultPolicy())
	expectInvariantPanic(t, func() { alloc.Next(42) })
}

func TestIDAllocator_NonOwnerClassPanics(t *testing.T) {
	alloc := hir.NewIDAllocator(def.DefaultPolicy())
	defer func() {
		if recover() == nil {
			t.Fatal("NewOwner(ClassExpr) did not panic")
		}
	}()
	alloc.NewOwner(def.ClassExpr)
}

// expectInvariantPanic runs f and fails unless it panics with an
// *hir.InvariantError.
func expectInvariantPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		err, ok := r.(error)
		var ie *hir.InvariantError
		if !ok || !errors.As(err, &ie) {
			t.Fatalf("panic value %v (%T) is not an InvariantError", r, r)
		}
	}()
	f()
}
