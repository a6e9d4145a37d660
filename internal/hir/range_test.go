package hir_test

import (
	"strings"
	"testing"

	"oxbow/internal/def"
	"oxbow/internal/hir"
	"oxbow/internal/source"
)

const rangeSrc = `fn main() {
    let a = 1..2;
    let b = ::std::ops::Range { start: 1, end: 2 };
    let c = ..;
    let d = 1..=2;
    let e = ::std::ops::RangeInclusive::new(1, 2);
}
`

func TestIsRangeLiteral(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("range.rs", []byte(rangeSrc))
	spanOf := func(needle string) source.Span {
		t.Helper()
		i := strings.Index(rangeSrc, needle)
		if i < 0 {
			t.Fatalf("%q not in source", needle)
		}
		return source.Span{File: file, Start: uint32(i), End: uint32(i + len(needle))}
	}

	l := newLowerer(t)
	l.enter(def.ClassItem)
	opsPath := func(krate, name string) *hir.Path {
		return l.path(hir.DefRes(def.KindStruct, def.LocalDefID(60)), hir.KwPathRoot, krate, "ops", name)
	}
	structLit := func(p *hir.Path, sp source.Span) *hir.Expr {
		return &hir.Expr{ID: l.id(), Kind: hir.ExprStruct, Data: hir.StructData{QPath: hir.ResolvedPath(p)}, Span: sp}
	}
	newCall := func(p *hir.Path, method string, sp source.Span) *hir.Expr {
		qself := &hir.Ty{ID: l.id(), Kind: hir.TyPath, Data: hir.PathTy{QPath: hir.ResolvedPath(p)}, Span: p.Span}
		seg := hir.SegmentFromIdent(l.ident(method))
		callee := &hir.Expr{ID: l.id(), Kind: hir.ExprPath, Data: hir.PathData{QPath: hir.TypeRelativePath(qself, &seg)}, Span: l.sp()}
		return &hir.Expr{ID: l.id(), Kind: hir.ExprCall, Data: hir.CallData{Callee: callee, Args: []*hir.Expr{l.lit(1), l.lit(2)}}, Span: sp}
	}
	dotdot := spanOf("= ..;")
	dotdot.Start += 2
	dotdot.End--

	tests := []struct {
		name string
		expr *hir.Expr
		sm   hir.SourceMap
		want bool
	}{
		{"half open literal", structLit(opsPath(hir.SymStd, "Range"), spanOf("1..2")), fs, true},
		{"explicit struct", structLit(opsPath(hir.SymStd, "Range"), spanOf("::std::ops::Range { start: 1, end: 2 }")), fs, false},
		{"core path", structLit(opsPath(hir.SymCore, "Range"), spanOf("1..2")), fs, true},
		{"foreign path", structLit(opsPath("alloc", "Range"), spanOf("1..2")), fs, false},
		{"full range", &hir.Expr{
			ID:   l.id(),
			Kind: hir.ExprPath,
			Data: hir.PathData{QPath: hir.ResolvedPath(opsPath(hir.SymStd, "RangeFull"))},
			Span: dotdot,
		}, fs, true},
		{"inclusive literal", newCall(opsPath(hir.SymStd, "RangeInclusive"), "new", spanOf("1..=2")), fs, true},
		{"explicit new call", newCall(opsPath(hir.SymStd, "RangeInclusive"), "new", spanOf("::std::ops::RangeInclusive::new(1, 2)")), fs, false},
		{"other constructor", newCall(opsPath(hir.SymStd, "RangeInclusive"), "with", spanOf("1..=2")), fs, false},
		{"no source map", structLit(opsPath(hir.SymStd, "Range"), spanOf("1..2")), nil, false},
		{"nil file set", structLit(opsPath(hir.SymStd, "Range"), spanOf("1..2")), (*source.FileSet)(nil), false},
		{"struct kind with path payload", &hir.Expr{
			ID:   l.id(),
			Kind: hir.ExprStruct,
			Data: hir.PathData{QPath: hir.ResolvedPath(opsPath(hir.SymStd, "Range"))},
			Span: spanOf("1..2"),
		}, fs, false},
		{"unknown file", structLit(opsPath(hir.SymStd, "Range"), source.Span{File: file + 7, Start: 1, End: 3}), fs, false},
		{"literal", l.lit(1), fs, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hir.IsRangeLiteral(tt.sm, tt.expr); got != tt.want {
				t.Errorf("IsRangeLiteral = %v, want %v", got, tt.want)
			}
		})
	}
}
