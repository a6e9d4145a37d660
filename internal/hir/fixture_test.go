package hir_test

import (
	"testing"

	"oxbow/internal/def"
	"oxbow/internal/hir"
	"oxbow/internal/source"
)

// lowerer is a hand-driven stand-in for AST lowering: it mints ids from an
// IDAllocator and assembles nodes for one owner at a time.
type lowerer struct {
	t     *testing.T
	alloc *hir.IDAllocator
	b     *hir.CrateBuilder
	owner hir.OwnerID
	pos   uint32
}

func newLowerer(t *testing.T) *lowerer {
	t.Helper()
	l := &lowerer{t: t, alloc: hir.NewIDAllocator(def.DefaultPolicy())}
	l.owner = hir.CrateHirID.Owner
	return l
}

// sp returns a fresh, distinct span so diagnostics never collapse.
func (l *lowerer) sp() source.Span {
	l.pos += 2
	return source.Span{Start: l.pos, End: l.pos + 1}
}

func (l *lowerer) id() hir.HirID { return l.alloc.Next(l.owner) }

// enter opens a new owner and makes it current.
func (l *lowerer) enter(class def.NodeClass) hir.HirID {
	id := l.alloc.NewOwner(class)
	l.owner = id.Owner
	return id
}

func (l *lowerer) ident(name string) hir.Ident { return hir.NewIdent(name, l.sp()) }

func (l *lowerer) path(res hir.Res, names ...string) *hir.Path {
	p := &hir.Path{Span: l.sp(), Res: res}
	for _, n := range names {
		p.Segments = append(p.Segments, hir.SegmentFromIdent(l.ident(n)))
	}
	return p
}

func (l *lowerer) pathTy(res hir.Res, names ...string) *hir.Ty {
	return &hir.Ty{ID: l.id(), Kind: hir.TyPath, Data: hir.PathTy{QPath: hir.ResolvedPath(l.path(res, names...))}, Span: l.sp()}
}

func (l *lowerer) i32() *hir.Ty {
	return l.pathTy(hir.PrimRes(hir.PrimTy{Kind: hir.PrimInt, Int: hir.I32}), "i32")
}

func (l *lowerer) lit(n uint64) *hir.Expr {
	sp := l.sp()
	return &hir.Expr{ID: l.id(), Kind: hir.ExprLit, Data: hir.LitData{Lit: hir.Lit{Span: sp, Kind: hir.LitInt, Int: n}}, Span: sp}
}

func (l *lowerer) pathExpr(res hir.Res, names ...string) *hir.Expr {
	return &hir.Expr{ID: l.id(), Kind: hir.ExprPath, Data: hir.PathData{QPath: hir.ResolvedPath(l.path(res, names...))}, Span: l.sp()}
}

func (l *lowerer) binary(op hir.BinOpKind, lhs, rhs *hir.Expr) *hir.Expr {
	sp := lhs.Span.To(rhs.Span)
	return &hir.Expr{ID: l.id(), Kind: hir.ExprBinary, Data: hir.BinaryData{Op: hir.BinOp{Node: op, Span: sp}, Left: lhs, Right: rhs}, Span: sp}
}

func (l *lowerer) field(base *hir.Expr, name string) *hir.Expr {
	return &hir.Expr{ID: l.id(), Kind: hir.ExprField, Data: hir.FieldData{Base: base, Ident: l.ident(name)}, Span: l.sp()}
}

func (l *lowerer) bind(name string) *hir.Pat {
	return &hir.Pat{ID: l.id(), Kind: hir.PatBinding, Data: hir.BindingPat{Annotation: hir.Unannotated, Ident: l.ident(name)}, Span: l.sp()}
}

func (l *lowerer) wild() *hir.Pat {
	return &hir.Pat{ID: l.id(), Kind: hir.PatWild, Span: l.sp()}
}

func (l *lowerer) local(pat *hir.Pat, init *hir.Expr) hir.Stmt {
	return hir.Stmt{
		ID:    l.id(),
		Kind:  hir.StmtLocal,
		Local: &hir.Local{Pat: pat, Init: init, ID: l.id(), Span: l.sp(), Source: hir.LocalNormal},
		Span:  l.sp(),
	}
}

func (l *lowerer) block(stmts []hir.Stmt, tail *hir.Expr) *hir.Expr {
	blk := &hir.Block{Stmts: stmts, Expr: tail, ID: l.id(), Rules: hir.DefaultBlock, Span: l.sp()}
	return &hir.Expr{ID: l.id(), Kind: hir.ExprBlock, Data: hir.BlockData{Block: blk}, Span: blk.Span}
}

// body registers value as a body of the current owner.
func (l *lowerer) body(params []hir.Param, value *hir.Expr) hir.BodyID {
	l.t.Helper()
	id := hir.BodyID{HirID: value.ID}
	if err := l.b.AddBody(id, &hir.Body{Params: params, Value: value}); err != nil {
		l.t.Fatalf("AddBody: %v", err)
	}
	return id
}

func (l *lowerer) selfRef() *hir.Ty {
	self := l.pathTy(hir.Res{Kind: hir.ResSelfTy}, "Self")
	return &hir.Ty{
		ID:   l.id(),
		Kind: hir.TyRptr,
		Data: hir.RptrTy{
			Lifetime: hir.Lifetime{ID: l.id(), Span: l.sp(), Name: hir.LifetimeName{Kind: hir.LifetimeImplicit}},
			Mt:       hir.MutTy{Ty: self, Mutbl: hir.Not},
		},
		Span: l.sp(),
	}
}

// testCrate is the HIR of roughly:
//
//	use std::ops;
//	struct Point { x: i32, y: i32 }
//	trait Shape { fn area(&self) -> i32; }
//	impl Shape for Point { fn area(&self) -> i32 { self.x * self.y } }
//	fn main() { let p = 1 + 2; let f = |a| a; p }
type testCrate struct {
	*hir.Crate
	Use, Point, Shape, Impl, Main hir.ItemID
	Area                          hir.TraitItemID
	AreaImpl                      hir.ImplItemID
	MainBody, AreaBody, Closure   hir.BodyID
	ShapeDef                      def.DefID
}

func buildTestCrate(t *testing.T) *testCrate {
	t.Helper()
	l := newLowerer(t)
	tc := &testCrate{}
	l.b = hir.NewCrateBuilder()
	mustAdd := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}

	// use std::ops;
	useID := l.enter(def.ClassItem)
	mustAdd(l.b.AddItem(&hir.Item{
		Ident: l.ident("ops"),
		ID:    useID,
		Kind:  hir.ItemUse,
		Data:  hir.UseItem{Path: l.path(hir.DefRes(def.KindMod, def.LocalDefID(90)), "std", "ops"), Kind: hir.UseSingle},
		Vis:   hir.Visibility{Kind: hir.VisInherited},
		Span:  l.sp(),
	}))
	tc.Use = hir.ItemID{ID: useID}

	// struct Point
	pointID := l.enter(def.ClassItem)
	pointDef, _ := l.alloc.DefOf(pointID)
	var fields []hir.StructField
	for _, name := range []string{"x", "y"} {
		fid, _, _ := l.alloc.NextWithDef(l.owner, def.ClassField)
		fields = append(fields, hir.StructField{Span: l.sp(), Ident: l.ident(name), Vis: hir.Visibility{Kind: hir.VisInherited}, ID: fid, Ty: l.i32()})
	}
	mustAdd(l.b.AddItem(&hir.Item{
		Ident: l.ident("Point"),
		ID:    pointID,
		Kind:  hir.ItemStruct,
		Data:  hir.StructItem{Data: hir.VariantData{Kind: hir.VariantStruct, Fields: fields}, Generics: *hir.EmptyGenerics()},
		Span:  l.sp(),
	}))
	tc.Point = hir.ItemID{ID: pointID}

	// trait Shape { fn area(&self) -> i32; }
	shapeID := l.enter(def.ClassItem)
	tc.ShapeDef, _ = l.alloc.DefOf(shapeID)
	shapeSpan := l.sp()
	areaID := l.enter(def.ClassTraitItem)
	mustAdd(l.b.AddTraitItem(&hir.TraitItem{
		Ident:    l.ident("area"),
		ID:       areaID,
		Generics: *hir.EmptyGenerics(),
		Kind:     hir.TraitItemFn,
		Data: hir.TraitFn{
			Sig: hir.FnSig{Decl: &hir.FnDecl{
				Inputs:       []*hir.Ty{l.selfRef()},
				Output:       hir.FnRetTy{Kind: hir.RetReturn, Ty: l.i32()},
				ImplicitSelf: hir.ImplicitSelfImmRef,
			}},
			Method: hir.TraitMethod{Kind: hir.MethodRequired, ParamNames: []hir.Ident{l.ident("self")}},
		},
		Span: l.sp(),
	}))
	tc.Area = hir.TraitItemID{HirID: areaID}
	l.owner = shapeID.Owner
	mustAdd(l.b.AddItem(&hir.Item{
		Ident: l.ident("Shape"),
		ID:    shapeID,
		Kind:  hir.ItemTrait,
		Data: hir.Trait{
			Generics: *hir.EmptyGenerics(),
			Items: []hir.TraitItemRef{{
				ID:    tc.Area,
				Ident: hir.IdentWithDummySpan("area"),
				Kind:  hir.AssocItemKind{Kind: hir.AssocFn, HasSelf: true},
				Span:  l.sp(),
			}},
		},
		Span: shapeSpan,
	}))
	tc.Shape = hir.ItemID{ID: shapeID}

	// impl Shape for Point
	implID := l.enter(def.ClassItem)
	implSpan := l.sp()
	areaImplID := l.enter(def.ClassImplItem)
	selfParam := l.bind("self")
	mul := l.binary(hir.BinMul,
		l.field(l.pathExpr(hir.LocalRes(selfParam.ID), "self"), "x"),
		l.field(l.pathExpr(hir.LocalRes(selfParam.ID), "self"), "y"))
	tc.AreaBody = l.body([]hir.Param{{ID: l.id(), Pat: selfParam, Span: selfParam.Span}}, mul)
	mustAdd(l.b.AddImplItem(&hir.ImplItem{
		ID:       areaImplID,
		Ident:    l.ident("area"),
		Vis:      hir.Visibility{Kind: hir.VisInherited},
		Generics: *hir.EmptyGenerics(),
		Kind:     hir.ImplItemFn,
		Data: hir.ImplFn{
			Sig: hir.FnSig{Decl: &hir.FnDecl{
				Inputs: []*hir.Ty{l.selfRef()},
				Output: hir.FnRetTy{Kind: hir.RetReturn, Ty: l.i32()},
			}},
			Body: tc.AreaBody,
		},
		Span: l.sp(),
	}))
	tc.AreaImpl = hir.ImplItemID{HirID: areaImplID}
	l.owner = implID.Owner
	mustAdd(l.b.AddItem(&hir.Item{
		ID:   implID,
		Kind: hir.ItemImpl,
		Data: hir.Impl{
			Generics: *hir.EmptyGenerics(),
			OfTrait:  &hir.TraitRef{Path: l.path(hir.DefRes(def.KindTrait, tc.ShapeDef), "Shape"), RefID: l.id()},
			SelfTy:   l.pathTy(hir.DefRes(def.KindStruct, pointDef), "Point"),
			Items: []hir.ImplItemRef{{
				ID:    tc.AreaImpl,
				Ident: hir.IdentWithDummySpan("area"),
				Kind:  hir.AssocItemKind{Kind: hir.AssocFn, HasSelf: true},
				Span:  l.sp(),
				Vis:   hir.Visibility{Kind: hir.VisInherited},
			}},
		},
		Vis:  hir.Visibility{Kind: hir.VisInherited},
		Span: implSpan,
	}))
	tc.Impl = hir.ItemID{ID: implID}
	l.b.AddTraitImpl(tc.ShapeDef, implID)

	// fn main() { let p = 1 + 2; let f = |a| a; p }
	mainID := l.enter(def.ClassItem)
	p := l.bind("p")
	sum := l.binary(hir.BinAdd, l.lit(1), l.lit(2))
	a := l.bind("a")
	tc.Closure = l.body([]hir.Param{{ID: l.id(), Pat: a, Span: a.Span}}, l.pathExpr(hir.LocalRes(a.ID), "a"))
	closureID, _, _ := l.alloc.NextWithDef(l.owner, def.ClassClosure)
	closure := &hir.Expr{
		ID:   closureID,
		Kind: hir.ExprClosure,
		Data: hir.ClosureData{
			CaptureBy: hir.CaptureByRef,
			Decl:      &hir.FnDecl{Inputs: []*hir.Ty{{ID: l.id(), Kind: hir.TyInfer, Span: l.sp()}}},
			Body:      tc.Closure,
			DeclSpan:  l.sp(),
		},
		Span: l.sp(),
	}
	value := l.block(
		[]hir.Stmt{l.local(p, sum), l.local(l.bind("f"), closure)},
		l.pathExpr(hir.LocalRes(p.ID), "p"),
	)
	tc.MainBody = l.body(nil, value)
	mustAdd(l.b.AddItem(&hir.Item{
		Ident: l.ident("main"),
		ID:    mainID,
		Kind:  hir.ItemFn,
		Data: hir.FnItem{
			Sig:      hir.FnSig{Decl: &hir.FnDecl{Output: hir.FnRetTy{Kind: hir.RetDefault, Sp: l.sp()}}},
			Generics: *hir.EmptyGenerics(),
			Body:     tc.MainBody,
		},
		Vis:  hir.Visibility{Kind: hir.VisPublic},
		Span: l.sp(),
	}))
	tc.Main = hir.ItemID{ID: mainID}

	root := hir.Mod{Inner: l.sp(), ItemIDs: []hir.ItemID{tc.Use, tc.Point, tc.Shape, tc.Impl, tc.Main}}
	l.b.SetRoot(root, nil, source.Span{End: 1000})
	mustAdd(l.b.AddModuleItems(hir.CrateHirID, hir.ModuleItems{
		Items:      []hir.HirID{useID, pointID, shapeID, implID, mainID},
		TraitItems: []hir.TraitItemID{tc.Area},
		ImplItems:  []hir.ImplItemID{tc.AreaImpl},
	}))
	tc.Crate = l.b.Build()
	return tc
}
