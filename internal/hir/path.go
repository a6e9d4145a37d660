package hir

import (
	"oxbow/internal/source"
)

// Path is a possibly global path with its resolution.
type Path struct {
	Span     source.Span
	Res      Res
	Segments []PathSegment
}

// IsGlobal reports whether the path starts at the crate root marker.
func (p *Path) IsGlobal() bool {
	return len(p.Segments) > 0 && p.Segments[0].Ident.Name == KwPathRoot
}

// SegmentNames returns the identifiers of all segments.
func (p *Path) SegmentNames() []string {
	names := make([]string, len(p.Segments))
	for i := range p.Segments {
		names[i] = p.Segments[i].Ident.Name
	}
	return names
}

func (p *Path) String() string {
	out := ""
	for i := range p.Segments {
		if i > 0 {
			out += "::"
		}
		if p.Segments[i].Ident.Name != KwPathRoot {
			out += p.Segments[i].Ident.Name
		}
	}
	return out
}

// PathSegment is one `::`-separated component of a path.
type PathSegment struct {
	Ident Ident
	// ID and Res are only set on segments that resolution recorded,
	// typically the last one and module prefixes.
	ID  *HirID
	Res *Res
	// Args is nil when the segment was written without `<...>`.
	Args *GenericArgs
	// InferArgs means the segment's missing arguments are inferred rather
	// than defaulted; it is true for segments written in value position.
	InferArgs bool
}

// SegmentFromIdent builds a bare segment.
func SegmentFromIdent(ident Ident) PathSegment {
	return PathSegment{Ident: ident, InferArgs: true}
}

// GenericArgs returns the segment's arguments, never nil.
func (s *PathSegment) GenericArgs() *GenericArgs {
	if s.Args != nil {
		return s.Args
	}
	return NoGenericArgs()
}

// QPathKind discriminates qualified paths.
type QPathKind uint8

const (
	// QPathResolved is `path` or `<T as Trait>::path`, fully resolved.
	QPathResolved QPathKind = iota
	// QPathTypeRelative is `<T>::name` or `T::name`, resolved during type
	// checking relative to QSelf.
	QPathTypeRelative
)

// QPath is a path that may be qualified by a self type.
type QPath struct {
	Kind    QPathKind
	QSelf   *Ty          // optional for Resolved, required for TypeRelative
	Path    *Path        // Resolved
	Segment *PathSegment // TypeRelative
}

// ResolvedPath builds an unqualified resolved QPath.
func ResolvedPath(p *Path) QPath {
	return QPath{Kind: QPathResolved, Path: p}
}

// TypeRelativePath builds `QSelf::segment`.
func TypeRelativePath(qself *Ty, seg *PathSegment) QPath {
	return QPath{Kind: QPathTypeRelative, QSelf: qself, Segment: seg}
}

// Res returns the resolution of a resolved path, or ResErr for a
// type-relative one.
func (q *QPath) Res() Res {
	if q.Kind == QPathResolved && q.Path != nil {
		return q.Path.Res
	}
	return Res{}
}

// Span covers the qualified path.
func (q *QPath) Span() source.Span {
	switch q.Kind {
	case QPathResolved:
		if q.QSelf != nil {
			return q.QSelf.Span.To(q.Path.Span)
		}
		return q.Path.Span
	case QPathTypeRelative:
		return q.QSelf.Span.To(q.Segment.Ident.Span)
	default:
		panic(&InvariantError{Op: "span of unknown qpath kind"})
	}
}

// GenericArgKind discriminates generic arguments.
type GenericArgKind uint8

const (
	GenericArgLifetime GenericArgKind = iota
	GenericArgType
	GenericArgConst
)

// ConstArg is a const generic argument.
type ConstArg struct {
	Value AnonConst
	Span  source.Span
}

// GenericArg is one argument between `<` and `>`.
type GenericArg struct {
	Kind     GenericArgKind
	Lifetime *Lifetime
	Type     *Ty
	Const    *ConstArg
}

// Span of the argument.
func (a *GenericArg) Span() source.Span {
	switch a.Kind {
	case GenericArgLifetime:
		return a.Lifetime.Span
	case GenericArgType:
		return a.Type.Span
	case GenericArgConst:
		return a.Const.Span
	default:
		panic(&InvariantError{Op: "span of unknown generic arg kind"})
	}
}

// ID of the argument node.
func (a *GenericArg) ID() HirID {
	switch a.Kind {
	case GenericArgLifetime:
		return a.Lifetime.ID
	case GenericArgType:
		return a.Type.ID
	case GenericArgConst:
		return a.Const.Value.ID
	default:
		panic(&InvariantError{Op: "id of unknown generic arg kind"})
	}
}

// IsConst reports a const argument.
func (a *GenericArg) IsConst() bool { return a.Kind == GenericArgConst }

// Descr names the argument kind for diagnostics.
func (a *GenericArg) Descr() string {
	switch a.Kind {
	case GenericArgLifetime:
		return "lifetime"
	case GenericArgType:
		return "type"
	case GenericArgConst:
		return "constant"
	default:
		return "generic argument"
	}
}

// GenericParamCount tallies parameters or arguments by kind.
type GenericParamCount struct {
	Lifetimes int
	Types     int
	Consts    int
}

// GenericArgs is the argument list of a path segment.
type GenericArgs struct {
	Args     []GenericArg
	Bindings []TypeBinding
	// Parenthesized marks `Fn(A, B) -> C` sugar: Args holds one tuple type
	// of the inputs and Bindings one `Output = C` binding.
	Parenthesized bool
}

// NoGenericArgs returns a fresh empty argument list.
func NoGenericArgs() *GenericArgs { return &GenericArgs{} }

// IsEmpty reports an argument list with nothing in it.
func (a *GenericArgs) IsEmpty() bool {
	return len(a.Args) == 0 && len(a.Bindings) == 0 && !a.Parenthesized
}

// Inputs returns the input types of `Fn(..)` sugar. Calling it on any other
// argument list is a contract violation.
func (a *GenericArgs) Inputs() []*Ty {
	if a.Parenthesized {
		for i := range a.Args {
			arg := &a.Args[i]
			switch arg.Kind {
			case GenericArgLifetime:
				continue
			case GenericArgType:
				if tup, ok := arg.Type.Data.(TupTy); ok {
					return tup.Elems
				}
			}
			break
		}
	}
	panic(&InvariantError{Op: "GenericArgs.Inputs on non-parenthesized arguments"})
}

// OwnCounts tallies the arguments by kind. Bindings are not counted.
func (a *GenericArgs) OwnCounts() GenericParamCount {
	var c GenericParamCount
	for i := range a.Args {
		switch a.Args[i].Kind {
		case GenericArgLifetime:
			c.Lifetimes++
		case GenericArgType:
			c.Types++
		case GenericArgConst:
			c.Consts++
		}
	}
	return c
}

// Span covers all arguments and bindings.
func (a *GenericArgs) Span() source.Span {
	sp := source.DummySpan
	for i := range a.Args {
		s := a.Args[i].Span()
		if s.IsDummy() {
			continue
		}
		if sp.IsDummy() {
			sp = s
		} else {
			sp = sp.Cover(s)
		}
	}
	return sp
}

// TypeBindingKind discriminates associated type bindings.
type TypeBindingKind uint8

const (
	// BindingConstraint is `Assoc: Bound`.
	BindingConstraint TypeBindingKind = iota
	// BindingEquality is `Assoc = Ty`.
	BindingEquality
)

// TypeBinding binds an associated type inside generic arguments.
type TypeBinding struct {
	ID     HirID
	Ident  Ident
	Kind   TypeBindingKind
	Bounds []GenericBound // Constraint
	Ty     *Ty            // Equality
	Span   source.Span
}

// Type returns the bound type of an equality binding. A constraint binding
// has none and asking for it is a contract violation.
func (b *TypeBinding) Type() *Ty {
	if b.Kind != BindingEquality {
		invariant("TypeBinding.Type on a constraint binding", b.ID)
	}
	return b.Ty
}
