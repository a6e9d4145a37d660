package hir_test

import (
	"testing"

	"oxbow/internal/def"
	"oxbow/internal/hir"
)

func (l *lowerer) wrap(kind hir.ExprKind, data hir.ExprData) *hir.Expr {
	return &hir.Expr{ID: l.id(), Kind: kind, Data: data, Span: l.sp()}
}

func (l *lowerer) dropTemps(e *hir.Expr) *hir.Expr {
	return l.wrap(hir.ExprDropTemps, hir.DropTempsData{Inner: e})
}

func (l *lowerer) call(callee *hir.Expr, args ...*hir.Expr) *hir.Expr {
	return l.wrap(hir.ExprCall, hir.CallData{Callee: callee, Args: args})
}

func TestExpr_Precedence(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	x := func() *hir.Expr { return l.pathExpr(hir.LocalRes(hir.HirID{Owner: l.owner, Local: 1}), "x") }

	tests := []struct {
		name string
		expr *hir.Expr
		want int
	}{
		{"closure", l.wrap(hir.ExprClosure, hir.ClosureData{}), -40},
		{"return", l.wrap(hir.ExprRet, hir.RetData{}), hir.PrecJump},
		{"break", l.wrap(hir.ExprBreak, hir.BreakData{}), hir.PrecJump},
		{"assign", l.wrap(hir.ExprAssign, hir.AssignData{Lhs: x(), Rhs: x()}), 2},
		{"or", l.binary(hir.BinOr, x(), x()), 5},
		{"and", l.binary(hir.BinAnd, x(), x()), 6},
		{"eq", l.binary(hir.BinEq, x(), x()), 7},
		{"bitor", l.binary(hir.BinBitOr, x(), x()), 8},
		{"shl", l.binary(hir.BinShl, x(), x()), 11},
		{"add", l.binary(hir.BinAdd, x(), x()), 12},
		{"mul", l.binary(hir.BinMul, x(), x()), 13},
		{"cast", l.wrap(hir.ExprCast, hir.CastData{Expr: x(), Ty: l.i32()}), 14},
		{"neg", l.wrap(hir.ExprUnary, hir.UnaryData{Op: hir.UnNeg, Operand: x()}), hir.PrecPrefix},
		{"call", l.call(x()), hir.PrecPostfix},
		{"field", l.field(x(), "f"), hir.PrecPostfix},
		{"lit", l.lit(1), hir.PrecParen},
		{"err", &hir.Expr{ID: l.id(), Kind: hir.ExprErr}, hir.PrecParen},
		{"drop temps is transparent", l.dropTemps(l.binary(hir.BinAdd, x(), x())), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Precedence().Order(); got != tt.want {
				t.Errorf("Order() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExpr_IsPlaceExpr(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	local := func() *hir.Expr { return l.pathExpr(hir.LocalRes(hir.HirID{Owner: l.owner, Local: 1}), "x") }
	static := l.pathExpr(hir.DefRes(def.KindStatic, def.LocalDefID(7)), "COUNTER")
	fn := l.pathExpr(hir.DefRes(def.KindFn, def.LocalDefID(8)), "f")
	never := func(*hir.Expr) bool { return false }

	tests := []struct {
		name string
		expr *hir.Expr
		want bool
	}{
		{"local", local(), true},
		{"static", static, true},
		{"fn item", fn, false},
		{"unresolved path", l.pathExpr(hir.Res{Kind: hir.ResErr}, "nope"), true},
		{"deref", l.wrap(hir.ExprUnary, hir.UnaryData{Op: hir.UnDeref, Operand: l.call(fn)}), true},
		{"neg", l.wrap(hir.ExprUnary, hir.UnaryData{Op: hir.UnNeg, Operand: local()}), false},
		{"field of local", l.field(local(), "f"), true},
		{"field of call", l.field(l.call(fn), "f"), false},
		{"index of local", l.wrap(hir.ExprIndex, hir.IndexData{Base: local(), Index: l.lit(0)}), true},
		{"type ascription of local", l.wrap(hir.ExprType, hir.CastData{Expr: local(), Ty: l.i32()}), true},
		{"cast of local", l.wrap(hir.ExprCast, hir.CastData{Expr: local(), Ty: l.i32()}), false},
		{"literal", l.lit(3), false},
		{"call", l.call(fn), false},
		{"struct literal", l.wrap(hir.ExprStruct, hir.StructData{
			QPath:  hir.ResolvedPath(l.path(hir.DefRes(def.KindStruct, def.LocalDefID(9)), "Point")),
			Fields: []hir.Field{{ID: l.id(), Ident: l.ident("x"), Expr: local(), Span: l.sp()}},
		}), false},
		{"error expression", &hir.Expr{ID: l.id(), Kind: hir.ExprErr}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.IsPlaceExpr(never); got != tt.want {
				t.Errorf("IsPlaceExpr = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("projection from an admitted base", func(t *testing.T) {
		e := l.field(l.call(fn), "f")
		if !e.IsSyntacticPlaceExpr() {
			t.Errorf("field of call should be a syntactic place")
		}
	})
}

func TestExpr_PeelDropTemps(t *testing.T) {
	l := newLowerer(t)
	l.enter(def.ClassItem)
	inner := l.lit(1)
	e := inner
	for range 3 {
		e = l.dropTemps(e)
	}
	peeled := e.PeelDropTemps()
	if peeled != inner {
		t.Fatalf("PeelDropTemps returned %s, want the literal", peeled.Kind)
	}
	if again := peeled.PeelDropTemps(); again != peeled {
		t.Errorf("PeelDropTemps is not idempotent")
	}
}

func TestBinOpKind_Classes(t *testing.T) {
	tests := []struct {
		op                   hir.BinOpKind
		lazy, shift, compare bool
	}{
		{hir.BinAnd, true, false, false},
		{hir.BinOr, true, false, false},
		{hir.BinShl, false, true, false},
		{hir.BinLe, false, false, true},
		{hir.BinAdd, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if tt.op.IsLazy() != tt.lazy || tt.op.IsShift() != tt.shift || tt.op.IsComparison() != tt.compare {
				t.Errorf("classes of %s = %v/%v/%v", tt.op, tt.op.IsLazy(), tt.op.IsShift(), tt.op.IsComparison())
			}
			if tt.op.IsByValue() == tt.compare {
				t.Errorf("IsByValue(%s) should be the negation of IsComparison", tt.op)
			}
		})
	}
}
