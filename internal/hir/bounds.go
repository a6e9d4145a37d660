package hir

import (
	"oxbow/internal/def"
	"oxbow/internal/source"
)

// TraitRef is a reference to a trait in a bound or impl header.
type TraitRef struct {
	Path  *Path
	RefID HirID
}

// TraitDefID returns the DefID of the referenced trait. The reference must
// have resolved to a trait or trait alias; anything else, including an
// erroneous resolution, means the producer broke its contract.
func (t *TraitRef) TraitDefID() def.DefID {
	res := t.Path.Res
	if res.Kind == ResDef && (res.DefKind == def.KindTrait || res.DefKind == def.KindTraitAlias) {
		return res.DefID
	}
	panic(&InvariantError{Op: "TraitRef.TraitDefID on " + res.Descr(), ID: t.RefID.String()})
}

// PolyTraitRef is a trait reference with higher-ranked lifetimes,
// `for<'a> Trait<'a>`.
type PolyTraitRef struct {
	BoundGenericParams []GenericParam
	TraitRef           TraitRef
	Span               source.Span
}

// TraitBoundModifier distinguishes `T: Trait` from `T: ?Trait`.
type TraitBoundModifier uint8

const (
	ModifierNone TraitBoundModifier = iota
	ModifierMaybe
	ModifierMaybeConst
)

// GenericBoundKind discriminates bounds.
type GenericBoundKind uint8

const (
	BoundTrait GenericBoundKind = iota
	BoundOutlives
)

// GenericBound is one bound in a bound list, `Trait` or `'a`.
type GenericBound struct {
	Kind     GenericBoundKind
	Trait    PolyTraitRef       // BoundTrait
	Modifier TraitBoundModifier // BoundTrait
	Lifetime Lifetime           // BoundOutlives
}

// TraitDefID returns the bounded trait, if the bound is a trait bound.
func (b *GenericBound) TraitDefID() (def.DefID, bool) {
	if b.Kind != BoundTrait {
		return def.DefID{}, false
	}
	return b.Trait.TraitRef.TraitDefID(), true
}

// Span of the bound.
func (b *GenericBound) Span() source.Span {
	switch b.Kind {
	case BoundTrait:
		return b.Trait.Span
	case BoundOutlives:
		return b.Lifetime.Span
	default:
		panic(&InvariantError{Op: "span of unknown bound kind"})
	}
}

// BoundsSpan covers a bound list.
func BoundsSpan(bounds []GenericBound) (source.Span, bool) {
	if len(bounds) == 0 {
		return source.Span{}, false
	}
	return bounds[0].Span().To(bounds[len(bounds)-1].Span()), true
}
