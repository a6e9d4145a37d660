package hir_test

import (
	"slices"
	"testing"

	"oxbow/internal/def"
	"oxbow/internal/hir"
	"oxbow/internal/source"
)

func (l *lowerer) pat(kind hir.PatKind, data hir.PatData) *hir.Pat {
	return &hir.Pat{ID: l.id(), Kind: kind, Data: data, Span: l.sp()}
}

// samplePat builds `(a, ref b @ Some(_), [c, rest @ .., d], _ | box e)`.
func samplePat(l *lowerer) *hir.Pat {
	some := l.pat(hir.PatTupleStruct, hir.TupleStructPat{
		QPath: hir.ResolvedPath(l.path(hir.DefRes(def.KindCtor, def.LocalDefID(40)), "Some")),
		Elems: []*hir.Pat{l.wild()},
		DDPos: hir.NoDDPos,
	})
	b := l.pat(hir.PatBinding, hir.BindingPat{Annotation: hir.RefBinding, Ident: l.ident("b"), Sub: some})
	slice := l.pat(hir.PatSlice, hir.SlicePat{
		Before: []*hir.Pat{l.bind("c")},
		Slice:  l.pat(hir.PatBinding, hir.BindingPat{Ident: l.ident("rest"), Sub: l.wild()}),
		After:  []*hir.Pat{l.bind("d")},
	})
	or := l.pat(hir.PatOr, hir.OrPat{Alts: []*hir.Pat{l.wild(), l.pat(hir.PatBox, hir.BoxPat{Inner: l.bind("e")})}})
	return l.pat(hir.PatTuple, hir.TuplePat{Elems: []*hir.Pat{l.bind("a"), b, slice, or}, DDPos: hir.NoDDPos})
}

func bindingNames(p *hir.Pat) []string {
	var names []string
	p.EachBinding(func(_ hir.BindingAnnotation, _ hir.HirID, _ source.Span, ident hir.Ident) {
		names = append(names, ident.Name)
	})
	return names
}

func TestPat_WalkAlwaysOrder(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	p := samplePat(l)

	var kinds []hir.PatKind
	p.WalkAlways(func(p *hir.Pat) { kinds = append(kinds, p.Kind) })
	want := []hir.PatKind{
		hir.PatTuple,
		hir.PatBinding,
		hir.PatBinding, hir.PatTupleStruct, hir.PatWild,
		hir.PatSlice, hir.PatBinding, hir.PatBinding, hir.PatWild, hir.PatBinding,
		hir.PatOr, hir.PatWild, hir.PatBox, hir.PatBinding,
	}
	if !slices.Equal(kinds, want) {
		t.Errorf("visit order = %v\nwant %v", kinds, want)
	}
}

func TestPat_WalkPrunesSubtreeOnly(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	p := samplePat(l)

	count := 0
	p.Walk(func(p *hir.Pat) bool {
		count++
		return p.Kind != hir.PatSlice && p.Kind != hir.PatOr
	})
	// The slice and or subpatterns are skipped; the rest is visited.
	if count != 7 {
		t.Errorf("visited %d patterns, want 7", count)
	}
}

func TestPat_WalkShortStops(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	p := samplePat(l)

	count := 0
	ok := p.WalkShort(func(p *hir.Pat) bool {
		count++
		return p.Kind != hir.PatTupleStruct
	})
	if ok {
		t.Errorf("WalkShort returned true after a false")
	}
	if count != 4 {
		t.Errorf("visited %d patterns before stopping, want 4", count)
	}
	if !l.wild().WalkShort(func(*hir.Pat) bool { return true }) {
		t.Errorf("WalkShort over a full walk should return true")
	}
}

func TestPat_Bindings(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	p := samplePat(l)

	if got, want := bindingNames(p), []string{"a", "b", "c", "rest", "d", "e"}; !slices.Equal(got, want) {
		t.Errorf("bindings = %v, want %v", got, want)
	}
	if !p.ContainsBindings() {
		t.Errorf("ContainsBindings = false")
	}
	lit := l.pat(hir.PatLit, hir.LitPat{Expr: l.lit(3)})
	if lit.ContainsBindings() || len(bindingNames(lit)) != 0 {
		t.Errorf("literal pattern reports bindings")
	}
}

func TestPat_SimpleIdent(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)

	tests := []struct {
		name string
		pat  *hir.Pat
		want string
		ok   bool
	}{
		{"plain", l.bind("x"), "x", true},
		{"mut", l.pat(hir.PatBinding, hir.BindingPat{Annotation: hir.Mutable, Ident: l.ident("y")}), "y", true},
		{"ref", l.pat(hir.PatBinding, hir.BindingPat{Annotation: hir.RefBinding, Ident: l.ident("z")}), "", false},
		{"with subpattern", l.pat(hir.PatBinding, hir.BindingPat{Ident: l.ident("w"), Sub: l.wild()}), "", false},
		{"wild", l.wild(), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.pat.SimpleIdent()
			if ok != tt.ok || id.Name != tt.want {
				t.Errorf("SimpleIdent() = %q, %v; want %q, %v", id.Name, ok, tt.want, tt.ok)
			}
		})
	}
}
