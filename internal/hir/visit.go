package hir

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children of
// node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree rooted at n in source order, staying inside the
// owner it starts in: bodies and nested items are referenced by id and are
// not entered.
//
// A node whose Data payload does not match its Kind panics with an
// *InvariantError once the visitor has seen it.
//
// Nodes stored by value inside kind payloads, such as the generics of a
// function item, are handed to the visitor as pointers to copies. Compare
// nodes by ID, not by address.
func Walk(v Visitor, n Node) {
	w := walker{}
	w.walk(v, n)
}

// WalkBodies is like Walk but also enters the bodies of functions,
// closures, constants and anonymous constants, looking them up in c.
func WalkBodies(c *Crate, v Visitor, n Node) {
	w := walker{crate: c, bodies: true}
	w.walk(v, n)
}

// WalkNested is like WalkBodies but also enters nested owners: module
// members, items declared in blocks, trait and impl members and the opaque
// types of `impl Trait`. This gives a lexically scoped view of the crate.
func WalkNested(c *Crate, v Visitor, n Node) {
	w := walker{crate: c, bodies: true, nested: true}
	w.walk(v, n)
}

// WalkCrate walks the whole crate in lexical order, starting at the root
// module.
func WalkCrate(c *Crate, v Visitor) {
	WalkNested(c, v, c)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses n like Walk, calling f for each node. If f returns
// true, Inspect continues with the node's children, then calls f(nil).
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// InspectCrate is Inspect over the whole crate, bodies and nested owners
// included.
func InspectCrate(c *Crate, f func(Node) bool) {
	WalkCrate(c, inspector(f))
}

// DeepVisitor lifts a Visitor to an ItemLikeVisitor: each owner is walked
// with its bodies but without its nested owners, which VisitAllItemLikes
// reaches on its own. Every node of the crate outside the root module is
// therefore seen exactly once.
type DeepVisitor struct {
	V     Visitor
	Crate *Crate
}

func (d DeepVisitor) VisitItem(it *Item)           { WalkBodies(d.Crate, d.V, it) }
func (d DeepVisitor) VisitTraitItem(ti *TraitItem) { WalkBodies(d.Crate, d.V, ti) }
func (d DeepVisitor) VisitImplItem(ii *ImplItem)   { WalkBodies(d.Crate, d.V, ii) }

type walker struct {
	crate  *Crate
	bodies bool
	nested bool
}

func (w *walker) walk(v Visitor, n Node) {
	if v = v.Visit(n); v == nil {
		return
	}
	if m, ok := checkPayload(n); !ok {
		invariant("walk: "+m.What, m.ID)
	}

	switch n := n.(type) {
	case *Crate:
		if w.nested {
			for _, id := range n.Module.ItemIDs {
				w.walk(v, w.crate.Item(id))
			}
		}
		for i := range n.ExportedMacros {
			w.walk(v, &n.ExportedMacros[i])
		}

	case *Item:
		w.walk(v, &n.Vis)
		w.walkItemData(v, n)

	case *ForeignItem:
		w.walk(v, &n.Vis)
		switch d := n.Data.(type) {
		case ForeignFn:
			w.walk(v, &d.Generics)
			w.walkFnDecl(v, d.Decl)
		case ForeignStatic:
			w.walkTy(v, d.Ty)
		case nil:
		default:
			invariant(fmt.Sprintf("walk: foreign item payload %T", d), n.ID)
		}

	case *TraitItem:
		w.walk(v, &n.Generics)
		switch d := n.Data.(type) {
		case TraitConst:
			w.walkTy(v, d.Ty)
			if d.Default != nil {
				w.walkBody(v, *d.Default)
			}
		case TraitFn:
			w.walkFnDecl(v, d.Sig.Decl)
			if d.Method.Kind == MethodProvided {
				w.walkBody(v, d.Method.Body)
			}
		case TraitType:
			w.walkBounds(v, d.Bounds)
			w.walkTy(v, d.Default)
		default:
			invariant(fmt.Sprintf("walk: trait item payload %T", d), n.ID)
		}

	case *ImplItem:
		w.walk(v, &n.Vis)
		w.walk(v, &n.Generics)
		switch d := n.Data.(type) {
		case ImplConst:
			w.walkTy(v, d.Ty)
			w.walkBody(v, d.Body)
		case ImplFn:
			w.walkFnDecl(v, d.Sig.Decl)
			w.walkBody(v, d.Body)
		case ImplTyAlias:
			w.walkTy(v, d.Ty)
		case ImplOpaqueTy:
			w.walkBounds(v, d.Bounds)
		default:
			invariant(fmt.Sprintf("walk: impl item payload %T", d), n.ID)
		}

	case *MacroDef, *Lifetime:
		// leaves

	case *Variant:
		w.walk(v, &n.Data)
		if n.Disr != nil {
			w.walk(v, n.Disr)
		}

	case *VariantData:
		for i := range n.Fields {
			w.walk(v, &n.Fields[i])
		}

	case *StructField:
		w.walk(v, &n.Vis)
		w.walkTy(v, n.Ty)

	case *Visibility:
		if n.Kind == VisRestricted && n.Path != nil {
			w.walk(v, n.Path)
		}

	case *Generics:
		for i := range n.Params {
			w.walk(v, &n.Params[i])
		}
		for i := range n.Where.Predicates {
			w.walk(v, &n.Where.Predicates[i])
		}

	case *GenericParam:
		switch n.Kind.Tag {
		case ParamType:
			w.walkTy(v, n.Kind.Default)
		case ParamConst:
			w.walkTy(v, n.Kind.Ty)
		}
		w.walkBounds(v, n.Bounds)

	case *WherePredicate:
		switch n.Kind {
		case PredicateBound:
			w.walkTy(v, n.BoundedTy)
			w.walkBounds(v, n.Bounds)
			for i := range n.BoundGenericParams {
				w.walk(v, &n.BoundGenericParams[i])
			}
		case PredicateRegion:
			w.walk(v, &n.Lifetime)
			w.walkBounds(v, n.Bounds)
		case PredicateEq:
			w.walkTy(v, n.LhsTy)
			w.walkTy(v, n.RhsTy)
		}

	case *GenericBound:
		switch n.Kind {
		case BoundTrait:
			w.walk(v, &n.Trait)
		case BoundOutlives:
			w.walk(v, &n.Lifetime)
		}

	case *PolyTraitRef:
		for i := range n.BoundGenericParams {
			w.walk(v, &n.BoundGenericParams[i])
		}
		w.walk(v, &n.TraitRef)

	case *TraitRef:
		if n.Path != nil {
			w.walk(v, n.Path)
		}

	case *Path:
		for i := range n.Segments {
			w.walk(v, &n.Segments[i])
		}

	case *PathSegment:
		if n.Args != nil {
			w.walkGenericArgs(v, n.Args.Args)
			for i := range n.Args.Bindings {
				w.walk(v, &n.Args.Bindings[i])
			}
		}

	case *TypeBinding:
		switch n.Kind {
		case BindingEquality:
			w.walkTy(v, n.Ty)
		case BindingConstraint:
			w.walkBounds(v, n.Bounds)
		}

	case *Ty:
		w.walkTyData(v, n)

	case *AnonConst:
		w.walkBody(v, n.Body)

	case *Body:
		for i := range n.Params {
			w.walk(v, &n.Params[i])
		}
		w.walkExpr(v, n.Value)

	case *Param:
		w.walkPat(v, n.Pat)

	case *Expr:
		w.walkExprData(v, n)

	case *Field:
		w.walkExpr(v, n.Expr)

	case *Arm:
		w.walkPat(v, n.Pat)
		if n.Guard != nil {
			w.walkExpr(v, n.Guard.Expr)
		}
		w.walkExpr(v, n.Body)

	case *Block:
		for i := range n.Stmts {
			w.walk(v, &n.Stmts[i])
		}
		w.walkExpr(v, n.Expr)

	case *Stmt:
		switch n.Kind {
		case StmtLocal:
			w.walk(v, n.Local)
		case StmtItem:
			w.walkNestedItem(v, n.Item)
		case StmtExpr, StmtSemi:
			w.walkExpr(v, n.Expr)
		}

	case *Local:
		// The initializer dominates the bindings, so it comes first.
		w.walkExpr(v, n.Init)
		w.walkPat(v, n.Pat)
		w.walkTy(v, n.Ty)

	case *Pat:
		w.walkPatData(v, n)

	case *FieldPat:
		w.walkPat(v, n.Pat)

	default:
		panic(fmt.Sprintf("hir.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

func (w *walker) walkItemData(v Visitor, it *Item) {
	switch d := it.Data.(type) {
	case ExternCrateItem, GlobalAsm:
	case UseItem:
		if d.Path != nil {
			w.walk(v, d.Path)
		}
	case StaticItem:
		w.walkTy(v, d.Ty)
		w.walkBody(v, d.Body)
	case ConstItem:
		w.walkTy(v, d.Ty)
		w.walkBody(v, d.Body)
	case FnItem:
		w.walk(v, &d.Generics)
		w.walkFnDecl(v, d.Sig.Decl)
		w.walkBody(v, d.Body)
	case Mod:
		for _, id := range d.ItemIDs {
			w.walkNestedItem(v, id)
		}
	case ForeignMod:
		for i := range d.Items {
			w.walk(v, &d.Items[i])
		}
	case TyAliasItem:
		w.walkTy(v, d.Ty)
		w.walk(v, &d.Generics)
	case OpaqueTy:
		w.walk(v, &d.Generics)
		w.walkBounds(v, d.Bounds)
	case EnumItem:
		w.walk(v, &d.Generics)
		for i := range d.Def.Variants {
			w.walk(v, &d.Def.Variants[i])
		}
	case StructItem:
		w.walk(v, &d.Generics)
		w.walk(v, &d.Data)
	case UnionItem:
		w.walk(v, &d.Generics)
		w.walk(v, &d.Data)
	case Trait:
		w.walk(v, &d.Generics)
		w.walkBounds(v, d.Bounds)
		for _, ref := range d.Items {
			if w.nested {
				w.walk(v, w.crate.TraitItem(ref.ID))
			}
		}
	case TraitAlias:
		w.walk(v, &d.Generics)
		w.walkBounds(v, d.Bounds)
	case Impl:
		w.walk(v, &d.Generics)
		if d.OfTrait != nil {
			w.walk(v, d.OfTrait)
		}
		w.walkTy(v, d.SelfTy)
		for _, ref := range d.Items {
			if w.nested {
				w.walk(v, w.crate.ImplItem(ref.ID))
			}
		}
	default:
		invariant(fmt.Sprintf("walk: item payload %T", d), it.ID)
	}
}

func (w *walker) walkTyData(v Visitor, t *Ty) {
	switch d := t.Data.(type) {
	case SliceTy:
		w.walkTy(v, d.Elem)
	case ArrayTy:
		w.walkTy(v, d.Elem)
		w.walk(v, &d.Len)
	case PtrTy:
		w.walkTy(v, d.Mt.Ty)
	case RptrTy:
		w.walk(v, &d.Lifetime)
		w.walkTy(v, d.Mt.Ty)
	case BareFnTy:
		for i := range d.GenericParams {
			w.walk(v, &d.GenericParams[i])
		}
		w.walkFnDecl(v, d.Decl)
	case TupTy:
		for _, e := range d.Elems {
			w.walkTy(v, e)
		}
	case PathTy:
		w.walkQPath(v, &d.QPath)
	case DefTy:
		w.walkNestedItem(v, d.Item)
		w.walkGenericArgs(v, d.Args)
	case TraitObjectTy:
		for i := range d.Bounds {
			w.walk(v, &d.Bounds[i])
		}
		w.walk(v, &d.Lifetime)
	case TypeofTy:
		w.walk(v, &d.Expr)
	case nil:
	default:
		invariant(fmt.Sprintf("walk: type payload %T", d), t.ID)
	}
}

func (w *walker) walkExprData(v Visitor, e *Expr) {
	switch d := e.Data.(type) {
	case BoxData:
		w.walkExpr(v, d.Inner)
	case ArrayData:
		w.walkExprs(v, d.Elems)
	case CallData:
		w.walkExpr(v, d.Callee)
		w.walkExprs(v, d.Args)
	case MethodCallData:
		w.walk(v, &d.Segment)
		w.walkExprs(v, d.Args)
	case TupData:
		w.walkExprs(v, d.Elems)
	case BinaryData:
		w.walkExpr(v, d.Left)
		w.walkExpr(v, d.Right)
	case UnaryData:
		w.walkExpr(v, d.Operand)
	case LitData:
	case CastData:
		w.walkExpr(v, d.Expr)
		w.walkTy(v, d.Ty)
	case DropTempsData:
		w.walkExpr(v, d.Inner)
	case LoopData:
		if d.Body != nil {
			w.walk(v, d.Body)
		}
	case MatchData:
		w.walkExpr(v, d.Scrutinee)
		for i := range d.Arms {
			w.walk(v, &d.Arms[i])
		}
	case ClosureData:
		w.walkFnDecl(v, d.Decl)
		w.walkBody(v, d.Body)
	case BlockData:
		if d.Block != nil {
			w.walk(v, d.Block)
		}
	case AssignData:
		w.walkExpr(v, d.Lhs)
		w.walkExpr(v, d.Rhs)
	case FieldData:
		w.walkExpr(v, d.Base)
	case IndexData:
		w.walkExpr(v, d.Base)
		w.walkExpr(v, d.Index)
	case PathData:
		w.walkQPath(v, &d.QPath)
	case AddrOfData:
		w.walkExpr(v, d.Operand)
	case BreakData:
		w.walkExpr(v, d.Value)
	case ContinueData:
	case RetData:
		w.walkExpr(v, d.Value)
	case InlineAsmData:
		w.walkExprs(v, d.Outputs)
		w.walkExprs(v, d.Inputs)
	case StructData:
		w.walkQPath(v, &d.QPath)
		for i := range d.Fields {
			w.walk(v, &d.Fields[i])
		}
		w.walkExpr(v, d.Base)
	case RepeatData:
		w.walkExpr(v, d.Elem)
		w.walk(v, &d.Count)
	case YieldData:
		w.walkExpr(v, d.Value)
	case nil:
	default:
		invariant(fmt.Sprintf("walk: expression payload %T", d), e.ID)
	}
}

func (w *walker) walkPatData(v Visitor, p *Pat) {
	switch d := p.Data.(type) {
	case BindingPat:
		w.walkPat(v, d.Sub)
	case StructPat:
		w.walkQPath(v, &d.QPath)
		for i := range d.Fields {
			w.walk(v, &d.Fields[i])
		}
	case TupleStructPat:
		w.walkQPath(v, &d.QPath)
		w.walkPats(v, d.Elems)
	case OrPat:
		w.walkPats(v, d.Alts)
	case PathPat:
		w.walkQPath(v, &d.QPath)
	case TuplePat:
		w.walkPats(v, d.Elems)
	case BoxPat:
		w.walkPat(v, d.Inner)
	case RefPat:
		w.walkPat(v, d.Inner)
	case LitPat:
		w.walkExpr(v, d.Expr)
	case RangePat:
		w.walkExpr(v, d.Lo)
		w.walkExpr(v, d.Hi)
	case SlicePat:
		w.walkPats(v, d.Before)
		w.walkPat(v, d.Slice)
		w.walkPats(v, d.After)
	case nil:
	default:
		invariant(fmt.Sprintf("walk: pattern payload %T", d), p.ID)
	}
}

func (w *walker) walkQPath(v Visitor, q *QPath) {
	w.walkTy(v, q.QSelf)
	switch q.Kind {
	case QPathResolved:
		if q.Path != nil {
			w.walk(v, q.Path)
		}
	case QPathTypeRelative:
		if q.Segment != nil {
			w.walk(v, q.Segment)
		}
	}
}

func (w *walker) walkGenericArgs(v Visitor, args []GenericArg) {
	for _, a := range args {
		switch a.Kind {
		case GenericArgLifetime:
			if a.Lifetime != nil {
				w.walk(v, a.Lifetime)
			}
		case GenericArgType:
			w.walkTy(v, a.Type)
		case GenericArgConst:
			if a.Const != nil {
				w.walk(v, &a.Const.Value)
			}
		}
	}
}

func (w *walker) walkBounds(v Visitor, bounds []GenericBound) {
	for i := range bounds {
		w.walk(v, &bounds[i])
	}
}

func (w *walker) walkFnDecl(v Visitor, decl *FnDecl) {
	if decl == nil {
		return
	}
	for _, in := range decl.Inputs {
		w.walkTy(v, in)
	}
	if decl.Output.Kind == RetReturn {
		w.walkTy(v, decl.Output.Ty)
	}
}

func (w *walker) walkBody(v Visitor, id BodyID) {
	if w.bodies {
		w.walk(v, w.crate.Body(id))
	}
}

func (w *walker) walkNestedItem(v Visitor, id ItemID) {
	if w.nested {
		w.walk(v, w.crate.Item(id))
	}
}

// The helpers below skip absent optional children so the switch above can
// pass them through unchecked.

func (w *walker) walkTy(v Visitor, t *Ty) {
	if t != nil {
		w.walk(v, t)
	}
}

func (w *walker) walkExpr(v Visitor, e *Expr) {
	if e != nil {
		w.walk(v, e)
	}
}

func (w *walker) walkExprs(v Visitor, es []*Expr) {
	for _, e := range es {
		w.walkExpr(v, e)
	}
}

func (w *walker) walkPat(v Visitor, p *Pat) {
	if p != nil {
		w.walk(v, p)
	}
}

func (w *walker) walkPats(v Visitor, ps []*Pat) {
	for _, p := range ps {
		w.walkPat(v, p)
	}
}
