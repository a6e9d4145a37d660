package hir_test

import (
	"testing"

	"oxbow/internal/def"
	"oxbow/internal/hir"
	"oxbow/internal/source"
)

func TestGenericArgs_OwnCounts(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)

	// Foo<'a, u8, T>
	args := &hir.GenericArgs{Args: []hir.GenericArg{
		{Kind: hir.GenericArgLifetime, Lifetime: &hir.Lifetime{ID: l.id(), Span: l.sp(), Name: hir.LifetimeName{Kind: hir.LifetimeParam, Param: hir.PlainParam(l.ident("'a"))}}},
		{Kind: hir.GenericArgType, Type: l.pathTy(hir.PrimRes(hir.PrimTy{Kind: hir.PrimUint, Uint: hir.U8}), "u8")},
		{Kind: hir.GenericArgType, Type: l.pathTy(hir.DefRes(def.KindTyParam, def.LocalDefID(3)), "T")},
	}}
	if got, want := args.OwnCounts(), (hir.GenericParamCount{Lifetimes: 1, Types: 2}); got != want {
		t.Errorf("OwnCounts() = %+v, want %+v", got, want)
	}
	if args.IsEmpty() {
		t.Errorf("IsEmpty() = true")
	}
	if !(&hir.GenericArgs{}).IsEmpty() {
		t.Errorf("empty args report non-empty")
	}
}

func TestGenericArgs_Inputs(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)

	// Fn(i32, i32) -> i32
	inputs := []*hir.Ty{l.i32(), l.i32()}
	tup := &hir.Ty{ID: l.id(), Kind: hir.TyTup, Data: hir.TupTy{Elems: inputs}, Span: l.sp()}
	sugar := &hir.GenericArgs{
		Args: []hir.GenericArg{{Kind: hir.GenericArgType, Type: tup}},
		Bindings: []hir.TypeBinding{{
			ID: l.id(), Ident: l.ident(hir.SymOutput), Kind: hir.BindingEquality, Ty: l.i32(), Span: l.sp(),
		}},
		Parenthesized: true,
	}
	if got := sugar.Inputs(); len(got) != 2 || got[0] != inputs[0] || got[1] != inputs[1] {
		t.Errorf("Inputs() = %v", got)
	}
	if ty := sugar.Bindings[0].Type(); ty == nil || ty.Kind != hir.TyPath {
		t.Errorf("Output binding type = %v", ty)
	}

	plain := &hir.GenericArgs{Args: []hir.GenericArg{{Kind: hir.GenericArgType, Type: tup}}}
	expectInvariantPanic(t, func() { plain.Inputs() })
}

func TestTypeBinding_TypeOnConstraintPanics(t *testing.T) {
	b := &hir.TypeBinding{Kind: hir.BindingConstraint}
	expectInvariantPanic(t, func() { b.Type() })
}

func TestTraitRef_TraitDefID(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	trait := def.LocalDefID(12)

	tests := []struct {
		name  string
		res   hir.Res
		panic bool
	}{
		{"trait", hir.DefRes(def.KindTrait, trait), false},
		{"trait alias", hir.DefRes(def.KindTraitAlias, trait), false},
		{"struct", hir.DefRes(def.KindStruct, trait), true},
		{"error", hir.Res{Kind: hir.ResErr}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := &hir.TraitRef{Path: l.path(tt.res, "Tr"), RefID: l.id()}
			if tt.panic {
				expectInvariantPanic(t, func() { ref.TraitDefID() })
				return
			}
			if got := ref.TraitDefID(); got != trait {
				t.Errorf("TraitDefID() = %v, want %v", got, trait)
			}
		})
	}

	bound := &hir.GenericBound{Kind: hir.BoundOutlives}
	if _, ok := bound.TraitDefID(); ok {
		t.Errorf("outlives bound reports a trait")
	}
}

func TestItem_Generics(t *testing.T) {
	tc := buildTestCrate(t)

	if g := tc.Item(tc.Use).Generics(); g != nil {
		t.Errorf("use item has generics %+v", g)
	}
	g := tc.Item(tc.Point).Generics()
	if g == nil {
		t.Fatalf("struct reports no generics")
	}
	if !g.Empty() {
		t.Errorf("struct generics not empty: %+v", g)
	}
	if g.GetNamed("T") != nil {
		t.Errorf("GetNamed found a parameter in empty generics")
	}

	opaque := &hir.Item{Kind: hir.ItemOpaqueTy, Data: hir.OpaqueTy{Generics: *hir.EmptyGenerics()}}
	if opaque.Generics() == nil {
		t.Errorf("free-standing opaque type reports no generics")
	}
	fnDef := def.LocalDefID(5)
	opaque.Data = hir.OpaqueTy{Generics: *hir.EmptyGenerics(), ImplTraitFn: &fnDef}
	if opaque.Generics() != nil {
		t.Errorf("return-position opaque type should share its function's generics")
	}
}

func TestPath_Strings(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	p := l.path(hir.DefRes(def.KindMod, def.LocalDefID(1)), hir.KwPathRoot, "std", "ops")
	if !p.IsGlobal() {
		t.Errorf("IsGlobal() = false for a rooted path")
	}
	if got := p.String(); got != "::std::ops" {
		t.Errorf("String() = %q", got)
	}
}

func TestPathSegment_GenericArgsNeverNil(t *testing.T) {
	seg := hir.SegmentFromIdent(hir.IdentWithDummySpan("Vec"))
	args := seg.GenericArgs()
	if args == nil || !args.IsEmpty() {
		t.Fatalf("GenericArgs() of a bare segment = %#v", args)
	}
	if !hir.NoGenericArgs().IsEmpty() {
		t.Errorf("NoGenericArgs is not empty")
	}
	if c := args.OwnCounts(); c != (hir.GenericParamCount{}) {
		t.Errorf("OwnCounts of empty args = %+v", c)
	}
}

func TestGenerics_SpanForPredicatesOrEmptyPlace(t *testing.T) {
	g := &hir.Generics{Span: source.Span{File: 1, Start: 6, End: 9}}
	if got, want := g.SpanForPredicatesOrEmptyPlace(), (source.Span{File: 1, Start: 9, End: 9}); got != want {
		t.Errorf("no predicates: span = %v, want %v", got, want)
	}

	g.Where.Predicates = []hir.WherePredicate{
		{Kind: hir.PredicateBound, Extent: source.Span{File: 1, Start: 20, End: 28}},
		{Kind: hir.PredicateRegion, Extent: source.Span{File: 1, Start: 30, End: 37}},
	}
	if got, want := g.SpanForPredicatesOrEmptyPlace(), (source.Span{File: 1, Start: 20, End: 37}); got != want {
		t.Errorf("with predicates: span = %v, want %v", got, want)
	}
}
