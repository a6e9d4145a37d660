package hir

import (
	"fmt"

	"oxbow/internal/diag"
	"oxbow/internal/source"
)

// Verify checks the structural rules lowering must uphold and reports each
// violation to bag, sorted:
//
//   - every node id is unique and belongs to its enclosing owner;
//   - a body is stored under the id of its root expression;
//   - `..` positions and slice rest patterns are well formed;
//   - or-patterns have at least two alternatives;
//   - parenthesized generic args are one tuple input plus `Output`;
//   - every id referenced by the tree is present in the crate;
//   - every Data payload matches its node's Kind.
//
// Verify never panics on a malformed crate; missing owners and bodies are
// reported and skipped, and so is the subtree under a mismatched payload.
func Verify(c *Crate, bag *diag.Bag) {
	v := &verifier{
		crate:    c,
		reporter: diag.NewDedupReporter(&diag.BagReporter{Bag: bag}),
		seen:     make(map[HirID]source.Span),
		walked:   make(map[BodyID]bool),
	}
	v.run()
	bag.Sort()
}

type verifier struct {
	crate    *Crate
	reporter diag.Reporter
	seen     map[HirID]source.Span
	walked   map[BodyID]bool

	// pending bodies found while walking the current owner
	bodies []BodyID
}

func (v *verifier) run() {
	c := v.crate
	for _, id := range c.Module.ItemIDs {
		v.checkItemRef(id, c.Span)
	}
	c.VisitAllItemLikes(v)

	for id, body := range c.Bodies.All() {
		if body.Value == nil || body.Value.ID != id.HirID {
			got := "nothing"
			sp := c.Span
			if body.Value != nil {
				got = body.Value.ID.String()
				sp = body.Value.Span
			}
			v.errorf(diag.HirBodyIdentity, sp, "%s is stored under a different id than its value %s", id, got)
		}
	}
	for _, ids := range c.TraitImpls.All() {
		for _, id := range ids {
			if !c.Items.Has(ItemID{ID: id}) {
				v.errorf(diag.HirDanglingRef, c.Span, "trait impl list names %s, which is not an item", id)
			}
		}
	}
}

func (v *verifier) VisitItem(it *Item)           { v.owner(it, it.ID) }
func (v *verifier) VisitTraitItem(ti *TraitItem) { v.owner(ti, ti.ID) }
func (v *verifier) VisitImplItem(ii *ImplItem)   { v.owner(ii, ii.ID) }

// owner walks one owner and then, transitively, the bodies it references.
func (v *verifier) owner(n Node, id HirID) {
	Walk(&ownerVisitor{v: v, owner: id.Owner}, n)
	for len(v.bodies) > 0 {
		b := v.bodies[len(v.bodies)-1]
		v.bodies = v.bodies[:len(v.bodies)-1]
		if v.walked[b] {
			continue
		}
		v.walked[b] = true
		if body, ok := v.crate.Bodies.Get(b); ok {
			Walk(&ownerVisitor{v: v, owner: id.Owner}, body)
		}
	}
}

func (v *verifier) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	diag.ReportError(v.reporter, code, sp, fmt.Sprintf(format, args...)).Emit()
}

func (v *verifier) checkID(id HirID, owner OwnerID, sp source.Span) {
	if id == DummyHirID {
		return
	}
	if id.Owner != owner {
		v.errorf(diag.HirDuplicateLocalID, sp, "%s is used inside owner %d", id, owner)
		return
	}
	if prev, dup := v.seen[id]; dup {
		diag.ReportError(v.reporter, diag.HirDuplicateLocalID, sp, fmt.Sprintf("%s is assigned to more than one node", id)).
			WithNote(prev, "first use here").
			Emit()
		return
	}
	v.seen[id] = sp
}

func (v *verifier) checkItemRef(id ItemID, sp source.Span) {
	if !v.crate.Items.Has(id) {
		v.errorf(diag.HirDanglingRef, sp, "reference to missing %s", id)
	}
}

func (v *verifier) checkBodyRef(id BodyID, sp source.Span) {
	if !v.crate.Bodies.Has(id) {
		v.errorf(diag.HirDanglingRef, sp, "reference to missing %s", id)
		return
	}
	v.bodies = append(v.bodies, id)
}

type ownerVisitor struct {
	v     *verifier
	owner OwnerID
}

func (o *ownerVisitor) Visit(n Node) Visitor {
	if n == nil {
		return nil
	}
	v := o.v
	if m, ok := checkPayload(n); !ok {
		v.errorf(diag.HirKindPayload, m.Span, "%s: %s", m.ID, m.What)
		return nil
	}
	switch n := n.(type) {
	case *Item:
		v.checkID(n.ID, o.owner, n.Span)
		v.itemRefs(n)
	case *ForeignItem:
		// Foreign items own their own id space.
		v.checkID(n.ID, n.ID.Owner, n.Span)
		return &ownerVisitor{v: v, owner: n.ID.Owner}
	case *TraitItem:
		v.checkID(n.ID, o.owner, n.Span)
		v.traitItemBodies(n)
	case *ImplItem:
		v.checkID(n.ID, o.owner, n.Span)
		v.implItemBodies(n)
	case *Variant:
		v.checkID(n.ID, o.owner, n.Span)
	case *VariantData:
		if id, ok := n.CtorHirID(); ok {
			v.checkID(id, o.owner, source.DummySpan)
		}
	case *StructField:
		v.checkID(n.ID, o.owner, n.Span)
	case *Visibility:
		if n.Kind == VisRestricted {
			v.checkID(n.ID, o.owner, n.Span)
		}
	case *Generics:
		if len(n.Where.Predicates) > 0 {
			v.checkID(n.Where.ID, o.owner, n.Span)
		}
	case *GenericParam:
		v.checkID(n.ID, o.owner, n.Span)
	case *WherePredicate:
		if n.Kind == PredicateEq {
			v.checkID(n.ID, o.owner, n.Extent)
		}
	case *TraitRef:
		v.checkID(n.RefID, o.owner, pathSpan(n.Path))
	case *PathSegment:
		if n.ID != nil {
			v.checkID(*n.ID, o.owner, n.Ident.Span)
		}
		if n.Args != nil && n.Args.Parenthesized {
			v.checkParenthesized(n)
		}
	case *TypeBinding:
		v.checkID(n.ID, o.owner, n.Span)
	case *Lifetime:
		v.checkID(n.ID, o.owner, n.Span)
	case *Ty:
		v.checkID(n.ID, o.owner, n.Span)
		if d, ok := n.Data.(DefTy); ok {
			v.checkItemRef(d.Item, n.Span)
		}
	case *AnonConst:
		v.checkID(n.ID, o.owner, source.DummySpan)
		v.checkBodyRef(n.Body, source.DummySpan)
	case *Param:
		v.checkID(n.ID, o.owner, n.Span)
	case *Expr:
		v.checkID(n.ID, o.owner, n.Span)
		if d, ok := n.Data.(ClosureData); ok {
			v.checkBodyRef(d.Body, n.Span)
		}
	case *Field:
		v.checkID(n.ID, o.owner, n.Span)
	case *Arm:
		v.checkID(n.ID, o.owner, n.Span)
	case *Block:
		v.checkID(n.ID, o.owner, n.Span)
	case *Stmt:
		v.checkID(n.ID, o.owner, n.Span)
		if n.Kind == StmtItem {
			v.checkItemRef(n.Item, n.Span)
		}
	case *Local:
		v.checkID(n.ID, o.owner, n.Span)
	case *Pat:
		v.checkID(n.ID, o.owner, n.Span)
		v.checkPat(n)
	case *FieldPat:
		v.checkID(n.ID, o.owner, n.Span)
	}
	return o
}

func (v *verifier) itemRefs(it *Item) {
	switch d := it.Data.(type) {
	case StaticItem:
		v.checkBodyRef(d.Body, it.Span)
	case ConstItem:
		v.checkBodyRef(d.Body, it.Span)
	case FnItem:
		v.checkBodyRef(d.Body, it.Span)
	case Mod:
		for _, id := range d.ItemIDs {
			v.checkItemRef(id, d.Inner)
		}
	case Trait:
		for _, ref := range d.Items {
			if !v.crate.TraitItems.Has(ref.ID) {
				v.errorf(diag.HirDanglingRef, ref.Span, "reference to missing %s", ref.ID)
			}
		}
	case Impl:
		for _, ref := range d.Items {
			if !v.crate.ImplItems.Has(ref.ID) {
				v.errorf(diag.HirDanglingRef, ref.Span, "reference to missing %s", ref.ID)
			}
		}
	}
}

func (v *verifier) traitItemBodies(ti *TraitItem) {
	switch d := ti.Data.(type) {
	case TraitConst:
		if d.Default != nil {
			v.checkBodyRef(*d.Default, ti.Span)
		}
	case TraitFn:
		if d.Method.Kind == MethodProvided {
			v.checkBodyRef(d.Method.Body, ti.Span)
		}
	}
}

func (v *verifier) implItemBodies(ii *ImplItem) {
	switch d := ii.Data.(type) {
	case ImplConst:
		v.checkBodyRef(d.Body, ii.Span)
	case ImplFn:
		v.checkBodyRef(d.Body, ii.Span)
	}
}

func (v *verifier) checkPat(p *Pat) {
	switch d := p.Data.(type) {
	case TuplePat:
		v.checkDDPos(p, d.DDPos, len(d.Elems))
	case TupleStructPat:
		v.checkDDPos(p, d.DDPos, len(d.Elems))
	case SlicePat:
		if d.Slice != nil && d.Slice.Kind != PatWild && d.Slice.Kind != PatBinding {
			v.errorf(diag.HirSlicePatArity, d.Slice.Span, "rest of a slice pattern must be `..` or a binding, found %s", d.Slice.Kind)
		}
	case OrPat:
		if len(d.Alts) < 2 {
			v.errorf(diag.HirOrPatArity, p.Span, "or-pattern has %d alternatives, want at least 2", len(d.Alts))
		}
	}
}

func (v *verifier) checkDDPos(p *Pat, pos, n int) {
	if pos < NoDDPos || pos > n {
		v.errorf(diag.HirSlicePatArity, p.Span, "`..` position %d is outside 0..=%d", pos, n)
	}
}

// checkParenthesized enforces the shape of `Fn(A, B) -> C` sugar: a single
// tuple type argument and a single `Output` equality binding.
func (v *verifier) checkParenthesized(seg *PathSegment) {
	args := seg.Args
	ok := len(args.Args) == 1 && args.Args[0].Kind == GenericArgType &&
		args.Args[0].Type != nil && args.Args[0].Type.Kind == TyTup &&
		len(args.Bindings) == 1 && args.Bindings[0].Ident.Name == SymOutput &&
		args.Bindings[0].Kind == BindingEquality
	if !ok {
		v.errorf(diag.HirParenthesizedArgs, seg.Ident.Span, "parenthesized arguments of `%s` are not one input tuple and an `Output` binding", seg.Ident)
	}
}

func pathSpan(p *Path) source.Span {
	if p == nil {
		return source.DummySpan
	}
	return p.Span
}
