package hir

import (
	"oxbow/internal/source"
)

// GenericParamKindTag discriminates generic parameters.
type GenericParamKindTag uint8

const (
	ParamLifetime GenericParamKindTag = iota
	ParamType
	ParamConst
)

func (k GenericParamKindTag) String() string {
	switch k {
	case ParamLifetime:
		return "lifetime"
	case ParamType:
		return "type"
	case ParamConst:
		return "const"
	default:
		return "unknown"
	}
}

// LifetimeParamKind tells where a lifetime parameter came from.
type LifetimeParamKind uint8

const (
	// LifetimeParamExplicit is written in the source, `<'a>`.
	LifetimeParamExplicit LifetimeParamKind = iota
	// LifetimeParamInBand is used without being declared, `fn f(x: &'a u8)`.
	LifetimeParamInBand
	// LifetimeParamElided is synthesised for an elided lifetime.
	LifetimeParamElided
	// LifetimeParamError marks an invalid parameter.
	LifetimeParamError
)

// SyntheticTyParamKind marks type parameters created by lowering.
type SyntheticTyParamKind uint8

const (
	NotSynthetic SyntheticTyParamKind = iota
	// SyntheticImplTrait comes from argument-position `impl Trait`.
	SyntheticImplTrait
)

// GenericParamKind carries the kind-specific part of a generic parameter.
type GenericParamKind struct {
	Tag          GenericParamKindTag
	LifetimeKind LifetimeParamKind    // ParamLifetime
	Default      *Ty                  // ParamType
	Synthetic    SyntheticTyParamKind // ParamType
	Ty           *Ty                  // ParamConst
}

// GenericParam is a declared lifetime, type or const parameter.
type GenericParam struct {
	ID     HirID
	Name   ParamName
	Attrs  []Attribute
	Bounds []GenericBound
	Span   source.Span
	// PureWrtDrop is the `#[may_dangle]` attribute.
	PureWrtDrop bool
	Kind        GenericParamKind
}

// BoundsSpan covers the parameter's bounds, if any.
func (p *GenericParam) BoundsSpan() (source.Span, bool) {
	return BoundsSpan(p.Bounds)
}

// Generics is the parameter list and where clause of a declaration.
type Generics struct {
	Params []GenericParam
	Where  WhereClause
	Span   source.Span
}

// EmptyGenerics returns generics with no parameters or predicates.
func EmptyGenerics() *Generics {
	return &Generics{Where: WhereClause{ID: DummyHirID}}
}

// Empty reports no parameters and no predicates.
func (g *Generics) Empty() bool {
	return len(g.Params) == 0 && len(g.Where.Predicates) == 0
}

// OwnCounts tallies parameters by kind.
func (g *Generics) OwnCounts() GenericParamCount {
	var c GenericParamCount
	for i := range g.Params {
		switch g.Params[i].Kind.Tag {
		case ParamLifetime:
			c.Lifetimes++
		case ParamType:
			c.Types++
		case ParamConst:
			c.Consts++
		}
	}
	return c
}

// GetNamed returns the parameter with the given name.
func (g *Generics) GetNamed(name string) *GenericParam {
	for i := range g.Params {
		if g.Params[i].Name.Kind == ParamPlain && g.Params[i].Name.Ident.Name == name {
			return &g.Params[i]
		}
	}
	return nil
}

// Spans returns the span of every parameter, or the generics span when
// there are none.
func (g *Generics) Spans() []source.Span {
	if len(g.Params) == 0 {
		return []source.Span{g.Span}
	}
	out := make([]source.Span, len(g.Params))
	for i := range g.Params {
		out[i] = g.Params[i].Span
	}
	return out
}

// SpanForPredicatesOrEmptyPlace is where diagnostics point for the where
// clause: its predicates, or the empty place right after the generics
// when there are none.
func (g *Generics) SpanForPredicatesOrEmptyPlace() source.Span {
	if sp, ok := g.Where.Span(); ok {
		return sp
	}
	return g.Span.ShrinkToHi()
}

// WhereClause is the `where` part of a declaration.
type WhereClause struct {
	ID         HirID
	Predicates []WherePredicate
}

// Span covers all predicates. A clause without predicates has no span.
func (w *WhereClause) Span() (source.Span, bool) {
	if len(w.Predicates) == 0 {
		return source.Span{}, false
	}
	sp := w.Predicates[0].Span()
	for i := 1; i < len(w.Predicates); i++ {
		sp = sp.To(w.Predicates[i].Span())
	}
	return sp, true
}

// WherePredicateKind discriminates where-clause predicates.
type WherePredicateKind uint8

const (
	// PredicateBound is `for<'a> T: Bound`.
	PredicateBound WherePredicateKind = iota
	// PredicateRegion is `'a: 'b + 'c`.
	PredicateRegion
	// PredicateEq is `T = U`.
	PredicateEq
)

// WherePredicate is one predicate of a where clause.
type WherePredicate struct {
	Kind   WherePredicateKind
	Extent source.Span

	// PredicateBound
	BoundGenericParams []GenericParam
	BoundedTy          *Ty
	Bounds             []GenericBound // also PredicateRegion

	// PredicateRegion
	Lifetime Lifetime

	// PredicateEq
	ID    HirID
	LhsTy *Ty
	RhsTy *Ty
}

// Span of the predicate.
func (p *WherePredicate) Span() source.Span { return p.Extent }
