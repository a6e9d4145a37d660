package hir_test

import (
	"slices"
	"testing"

	"oxbow/internal/def"
	"oxbow/internal/diag"
	"oxbow/internal/hir"
	"oxbow/internal/source"
)

// singleFnCrate builds a crate holding one function whose body value is
// produced by value.
func singleFnCrate(t *testing.T, value func(l *lowerer) *hir.Expr) *hir.Crate {
	t.Helper()
	l := newLowerer(t)
	l.b = hir.NewCrateBuilder()
	id := l.enter(def.ClassItem)
	body := l.body(nil, value(l))
	err := l.b.AddItem(&hir.Item{
		Ident: l.ident("f"),
		ID:    id,
		Kind:  hir.ItemFn,
		Data:  hir.FnItem{Sig: hir.FnSig{Decl: &hir.FnDecl{}}, Generics: *hir.EmptyGenerics(), Body: body},
		Span:  l.sp(),
	})
	if err != nil {
		t.Fatal(err)
	}
	l.b.SetRoot(hir.Mod{ItemIDs: []hir.ItemID{{ID: id}}}, nil, source.Span{End: 500})
	return l.b.Build()
}

// letPat wraps pat in `{ let <pat> = 0; }`.
func letPat(l *lowerer, pat func() *hir.Pat) *hir.Expr {
	return l.block([]hir.Stmt{l.local(pat(), l.lit(0))}, nil)
}

func verifyCodes(c *hir.Crate) []diag.Code {
	bag := diag.NewBag(100)
	hir.Verify(c, bag)
	var codes []diag.Code
	for _, d := range bag.Items() {
		codes = append(codes, d.Code)
	}
	return codes
}

func TestVerify_CleanCrate(t *testing.T) {
	tc := buildTestCrate(t)
	bag := diag.NewBag(100)
	hir.Verify(tc.Crate, bag)
	if bag.Len() != 0 {
		t.Fatalf("clean crate reported:\n%s", diag.FormatShort(bag.Items(), nil, true))
	}
}

func TestVerify_Violations(t *testing.T) {
	tests := []struct {
		name  string
		value func(l *lowerer) *hir.Expr
		want  []diag.Code
	}{
		{
			name: "duplicate local id",
			value: func(l *lowerer) *hir.Expr {
				lhs, rhs := l.lit(1), l.lit(2)
				rhs.ID = lhs.ID
				return l.binary(hir.BinAdd, lhs, rhs)
			},
			want: []diag.Code{diag.HirDuplicateLocalID},
		},
		{
			name: "id of another owner",
			value: func(l *lowerer) *hir.Expr {
				e := l.lit(1)
				e.ID.Owner += 100
				return l.wrap(hir.ExprDropTemps, hir.DropTempsData{Inner: e})
			},
			want: []diag.Code{diag.HirDuplicateLocalID},
		},
		{
			name: "dotdot position out of range",
			value: func(l *lowerer) *hir.Expr {
				return letPat(l, func() *hir.Pat {
					return l.pat(hir.PatTuple, hir.TuplePat{Elems: []*hir.Pat{l.wild(), l.wild()}, DDPos: 3})
				})
			},
			want: []diag.Code{diag.HirSlicePatArity},
		},
		{
			name: "slice rest is not a binding",
			value: func(l *lowerer) *hir.Expr {
				return letPat(l, func() *hir.Pat {
					rest := l.pat(hir.PatLit, hir.LitPat{Expr: l.lit(4)})
					return l.pat(hir.PatSlice, hir.SlicePat{Before: []*hir.Pat{l.wild()}, Slice: rest})
				})
			},
			want: []diag.Code{diag.HirSlicePatArity},
		},
		{
			name: "single alternative or-pattern",
			value: func(l *lowerer) *hir.Expr {
				return letPat(l, func() *hir.Pat {
					return l.pat(hir.PatOr, hir.OrPat{Alts: []*hir.Pat{l.wild()}})
				})
			},
			want: []diag.Code{diag.HirOrPatArity},
		},
		{
			name: "parenthesized args without output",
			value: func(l *lowerer) *hir.Expr {
				p := l.path(hir.DefRes(def.KindTrait, def.LocalDefID(70)), "Fn")
				p.Segments[0].Args = &hir.GenericArgs{
					Args:          []hir.GenericArg{{Kind: hir.GenericArgType, Type: l.i32()}},
					Parenthesized: true,
				}
				return &hir.Expr{ID: l.id(), Kind: hir.ExprPath, Data: hir.PathData{QPath: hir.ResolvedPath(p)}, Span: l.sp()}
			},
			want: []diag.Code{diag.HirParenthesizedArgs},
		},
		{
			name: "payload of another kind",
			value: func(l *lowerer) *hir.Expr {
				return l.wrap(hir.ExprCall, hir.BlockData{})
			},
			want: []diag.Code{diag.HirKindPayload},
		},
		{
			name: "missing payload under a valid parent",
			value: func(l *lowerer) *hir.Expr {
				return l.wrap(hir.ExprDropTemps, hir.DropTempsData{Inner: l.wrap(hir.ExprCall, nil)})
			},
			want: []diag.Code{diag.HirKindPayload},
		},
		{
			name: "unknown expression kind",
			value: func(l *lowerer) *hir.Expr {
				return l.wrap(hir.ExprKind(200), hir.LitData{})
			},
			want: []diag.Code{diag.HirKindPayload},
		},
		{
			name: "closure body missing",
			value: func(l *lowerer) *hir.Expr {
				return l.wrap(hir.ExprClosure, hir.ClosureData{Decl: &hir.FnDecl{}, Body: hir.BodyID{HirID: l.id()}})
			},
			want: []diag.Code{diag.HirDanglingRef},
		},
		{
			name: "statement item missing",
			value: func(l *lowerer) *hir.Expr {
				stmt := hir.Stmt{ID: l.id(), Kind: hir.StmtItem, Item: hir.ItemID{ID: hir.HirID{Owner: 77}}, Span: l.sp()}
				return l.block([]hir.Stmt{stmt}, nil)
			},
			want: []diag.Code{diag.HirDanglingRef},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := verifyCodes(singleFnCrate(t, tt.value))
			if !slices.Equal(got, tt.want) {
				t.Errorf("codes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerify_BodyIdentity(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	value := l.lit(1)
	c := &hir.Crate{
		Bodies: hir.NewSortedMap(map[hir.BodyID]*hir.Body{
			{HirID: l.id()}: {Value: value},
		}),
	}
	if got := verifyCodes(c); !slices.Equal(got, []diag.Code{diag.HirBodyIdentity}) {
		t.Errorf("codes = %v", got)
	}
}

func TestVerify_DanglingModuleItem(t *testing.T) {
	c := &hir.Crate{Module: hir.Mod{ItemIDs: []hir.ItemID{{ID: hir.HirID{Owner: 5}}}}}
	if got := verifyCodes(c); !slices.Equal(got, []diag.Code{diag.HirDanglingRef}) {
		t.Errorf("codes = %v", got)
	}
}
