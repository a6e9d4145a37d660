package hir

import (
	"oxbow/internal/source"
)

// eachChild calls f on the direct subpatterns of p in source order and
// stops as soon as f returns false.
func (p *Pat) eachChild(f func(*Pat) bool) bool {
	each := func(pats []*Pat) bool {
		for _, c := range pats {
			if !f(c) {
				return false
			}
		}
		return true
	}
	switch p.Kind {
	case PatWild, PatLit, PatRange, PatPath:
		return true
	case PatBinding:
		if sub := p.Data.(BindingPat).Sub; sub != nil {
			return f(sub)
		}
		return true
	case PatStruct:
		fields := p.Data.(StructPat).Fields
		for i := range fields {
			if !f(fields[i].Pat) {
				return false
			}
		}
		return true
	case PatTupleStruct:
		return each(p.Data.(TupleStructPat).Elems)
	case PatTuple:
		return each(p.Data.(TuplePat).Elems)
	case PatOr:
		return each(p.Data.(OrPat).Alts)
	case PatBox:
		return f(p.Data.(BoxPat).Inner)
	case PatRef:
		return f(p.Data.(RefPat).Inner)
	case PatSlice:
		s := p.Data.(SlicePat)
		if !each(s.Before) {
			return false
		}
		if s.Slice != nil && !f(s.Slice) {
			return false
		}
		return each(s.After)
	default:
		panic(&InvariantError{Op: "walk of unknown pattern kind " + p.Kind.String(), ID: p.ID.String()})
	}
}

// WalkShort visits p and its subpatterns depth-first, left to right. The
// walk stops entirely as soon as it returns false, and that false is
// returned.
func (p *Pat) WalkShort(it func(*Pat) bool) bool {
	if !it(p) {
		return false
	}
	return p.eachChild(func(c *Pat) bool { return c.WalkShort(it) })
}

// Walk visits p and its subpatterns depth-first, left to right. Returning
// false from it skips the subpatterns of that node only.
func (p *Pat) Walk(it func(*Pat) bool) {
	if !it(p) {
		return
	}
	p.eachChild(func(c *Pat) bool {
		c.Walk(it)
		return true
	})
}

// WalkAlways visits every subpattern.
func (p *Pat) WalkAlways(it func(*Pat)) {
	p.Walk(func(p *Pat) bool {
		it(p)
		return true
	})
}

// EachBinding calls f for every binding the pattern introduces, in source
// order.
func (p *Pat) EachBinding(f func(ann BindingAnnotation, id HirID, span source.Span, ident Ident)) {
	p.WalkAlways(func(p *Pat) {
		if p.Kind == PatBinding {
			b := p.Data.(BindingPat)
			f(b.Annotation, p.ID, p.Span, b.Ident)
		}
	})
}

// ContainsBindings reports whether the pattern binds any names.
func (p *Pat) ContainsBindings() bool {
	found := false
	p.WalkShort(func(p *Pat) bool {
		if p.Kind == PatBinding {
			found = true
			return false
		}
		return true
	})
	return found
}
